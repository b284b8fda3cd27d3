package service

import "errors"

// ErrInvalidCredentials is returned by VerifyCredentials when the username
// is unknown or the password does not match. The two cases are deliberately
// not distinguished.
var ErrInvalidCredentials = errors.New("invalid username or password")
