package model

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every field validation error.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidTitle      = fmt.Errorf("%w: invalid title", ErrValidation)
	ErrInvalidMeeting    = fmt.Errorf("%w: invalid meeting days and times", ErrValidation)
	ErrInvalidName       = fmt.Errorf("%w: invalid course name", ErrValidation)
	ErrInvalidSection    = fmt.Errorf("%w: invalid section", ErrValidation)
	ErrInvalidCredits    = fmt.Errorf("%w: invalid credits", ErrValidation)
	ErrInvalidInstructor = fmt.Errorf("%w: invalid instructor id", ErrValidation)
)

// ErrConflict is returned by CheckConflict when two activities overlap.
var ErrConflict = errors.New("schedule conflict")
