package errno

import (
	"errors"
)

var (
	ErrMaxTurnsExceeded      = errors.New("max tool rounds exceeded")
	ErrModelNotToolCapable   = errors.New("model not tool capable")
	ErrProviderNotRegistered = errors.New("provider not registered")
	ErrEmptyModelResponse    = errors.New("empty model response")
)
