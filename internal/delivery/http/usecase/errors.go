package usecase

import "errors"

var (
	ErrProgressUnavailable = errors.New("progress is not available right now")
	ErrUnknownPath         = errors.New("unknown learning path")
	ErrUnknownCard         = errors.New("card does not belong to this module")
	ErrUnknownFlashcard    = errors.New("unknown flashcard")
	ErrInvalidBookmark     = errors.New("invalid bookmark type")
	ErrNoQuiz              = errors.New("module has no quiz")
)
