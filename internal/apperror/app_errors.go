package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfRange   = errors.New("cell coordinate out of range")
	ErrInvalidInput = errors.New("coordinate is not a number")
)

const (
	msgInvalidInput = "Invalid input. Please enter a valid number."
	msgOutOfRange   = "Invalid range. Please enter values between 0 and 2."
	msgCellOccupied = "Spot already taken."
)

// UserMessage - returns the text shown to a player for a rejected move.
// Errors that are not move rejections yield an empty string.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return msgInvalidInput
	case errors.Is(err, ErrOutOfRange):
		return msgOutOfRange
	case errors.Is(err, ErrCellOccupied):
		return msgCellOccupied
	default:
		return ""
	}
}

// IsMoveRejection - reports whether err is a recoverable input error after which the same player is asked again.
func IsMoveRejection(err error) bool {
	return UserMessage(err) != ""
}
