package domain

var (
	PROGRESS_GET_SUCCESS             = "Progress retrieved"
	PROGRESS_GET_FAILED              = "Failed to get progress"
	PROGRESS_SUMMARY_SUCCESS         = "Progress summary retrieved"
	PROGRESS_SUMMARY_FAILED          = "Failed to get progress summary"
	PROGRESS_MODULE_COMPLETE_SUCCESS = "Module marked as complete"
	PROGRESS_MODULE_COMPLETE_FAILED  = "Failed to mark module as complete"
	PROGRESS_CARD_READ_SUCCESS       = "Card marked as read"
	PROGRESS_CARD_READ_FAILED        = "Failed to mark card as read"
	PROGRESS_QUIZ_ATTEMPT_SUCCESS    = "Quiz attempt recorded"
	PROGRESS_QUIZ_ATTEMPT_FAILED     = "Failed to record quiz attempt"
	PROGRESS_QUIZ_SUBMIT_SUCCESS     = "Quiz graded"
	PROGRESS_QUIZ_SUBMIT_FAILED      = "Failed to grade quiz"
	PROGRESS_FLASHCARD_SUCCESS       = "Flashcard review recorded"
	PROGRESS_FLASHCARD_FAILED        = "Failed to record flashcard review"
	PROGRESS_FLASHCARD_DUE_SUCCESS   = "Due flashcards retrieved"
	PROGRESS_FLASHCARD_DUE_FAILED    = "Failed to get due flashcards"
	PROGRESS_PATH_SUCCESS            = "Learning path updated"
	PROGRESS_PATH_FAILED             = "Failed to update learning path"
	PROGRESS_BOOKMARK_ADD_SUCCESS    = "Bookmark added"
	PROGRESS_BOOKMARK_ADD_FAILED     = "Failed to add bookmark"
	PROGRESS_BOOKMARK_REMOVE_SUCCESS = "Bookmark removed"
	PROGRESS_BOOKMARK_REMOVE_FAILED  = "Failed to remove bookmark"
	PROGRESS_RESET_SUCCESS           = "Progress reset"
	PROGRESS_RESET_FAILED            = "Failed to reset progress"
)
