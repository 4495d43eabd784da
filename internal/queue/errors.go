package queue

import (
	"errors"

	"connected/internal/common"
)

// ErrBadCommand marks a payload that cannot be decoded. Redelivery cannot
// fix it, so it is dropped like a business-rule rejection.
var ErrBadCommand = errors.New("malformed command")

// Terminal reports whether err is a business-rule rejection for a single
// message. Terminal errors are logged and acked, never redelivered; anything
// else (store unavailable, broker trouble) is left to the broker's retry.
func Terminal(err error) bool {
	return errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrUnauthorized) ||
		errors.Is(err, ErrBadCommand)
}
