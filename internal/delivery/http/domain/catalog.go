package domain

var (
	CATALOG_MODULES_SUCCESS    = "Modules retrieved"
	CATALOG_MODULE_SUCCESS     = "Module retrieved"
	CATALOG_MODULE_FAILED      = "Failed to get module"
	CATALOG_TIMELINE_SUCCESS   = "Timeline retrieved"
	CATALOG_FLASHCARDS_SUCCESS = "Flashcards retrieved"
	CATALOG_QUIZ_SUCCESS       = "Quiz retrieved"
	CATALOG_QUIZ_FAILED        = "Failed to get quiz"
	CATALOG_PATHS_SUCCESS      = "Learning paths retrieved"
	CATALOG_GLOSSARY_SUCCESS   = "Glossary retrieved"
	CATALOG_MUSEUM_SUCCESS     = "Museum items retrieved"
	CATALOG_MUSEUM_FAILED      = "Failed to get museum items"
	CATALOG_MAPS_SUCCESS       = "Maps retrieved"
)
