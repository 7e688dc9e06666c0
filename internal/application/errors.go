package application

import "errors"

// ErrInvalidCredentials covers both "no such user" and "password mismatch".
// The two cases are deliberately indistinguishable to the caller; anything
// else coming out of the verifier is an infrastructure fault.
var ErrInvalidCredentials = errors.New("invalid credentials")
