package leave

import "errors"

var (
	ErrRequestNotFound = errors.New("leave request not found")
)
