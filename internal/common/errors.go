package common

import "errors"

// Sentinel errors for the failure classes the pipeline distinguishes.
// Call sites wrap these with fmt.Errorf("...: %w", ...) so HTTP handlers
// and queue consumers can classify with errors.Is.
var (
	// ErrNotFound - a referenced user, post, or comment does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized - the caller identity does not match the required identity
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnsupportedMedia - upload content type is not an image or video
	ErrUnsupportedMedia = errors.New("the media type must be an image or video")

	// ErrInvalidArgument - the request is missing or carries malformed information
	ErrInvalidArgument = errors.New("invalid argument")
)
