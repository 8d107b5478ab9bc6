package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrTutorialNotFound   = errors.New("tutorial not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrLessonLocked       = errors.New("lesson prerequisites not completed")
	ErrNoActiveSession    = errors.New("no tutorial selected")
	ErrNoActiveExercise   = errors.New("no exercise in progress")
	ErrLessonNotInScope   = errors.New("lesson does not belong to the selected tutorial")
	ErrSandboxUnavailable = errors.New("execution sandbox unavailable")
)
