package userdir

import "errors"

// ErrNotFound indicates no directory record matched the presented credentials.
var ErrNotFound = errors.New("user not found")
