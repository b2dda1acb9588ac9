package verdict

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches errors caused by malformed inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientHistory matches ratio-mode errors for histories with
	// fewer than two observations.
	ErrInsufficientHistory = errors.New("insufficient history")
)

// ArgumentError describes a rejected input parameter.
type ArgumentError struct {
	Param   string
	Message string
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s: %s", e.Param, e.Message)
}

// Is makes ArgumentError match ErrInvalidArgument.
func (e ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InsufficientHistoryError is returned by Ratio when a window holds a
// single observation.
type InsufficientHistoryError struct {
	Window string
	Length int
}

func (e InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: %s has %d observation(s), need at least %d",
		e.Window, e.Length, minRatioHistory)
}

// Is makes InsufficientHistoryError match ErrInsufficientHistory.
func (e InsufficientHistoryError) Is(target error) bool {
	return target == ErrInsufficientHistory
}

// IsInvalidArgument checks if err was caused by an invalid argument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInsufficientHistory checks if err was caused by a too-short history.
func IsInsufficientHistory(err error) bool {
	return errors.Is(err, ErrInsufficientHistory)
}
