package board

import "github.com/pkg/errors"

var (
	ErrInvalidStack    = errors.New("stack level out of range [0..7]")
	ErrInvalidChannel  = errors.New("channel out of range [1..4]")
	ErrInvalidState    = errors.New("invalid relay state")
	ErrNotDetected     = errors.New("card not detected")
	ErrWriteFailed     = errors.New("relay write failed")
	ErrReadFailed      = errors.New("relay read failed")
	ErrVerifyExhausted = errors.New("relay state readback never matched")
)
