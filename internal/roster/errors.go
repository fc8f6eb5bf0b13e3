package roster

import "errors"

// ErrMalformedRecord indicates a student line could not be parsed.
var ErrMalformedRecord = errors.New("malformed student record")
