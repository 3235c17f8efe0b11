package sessiontransport

import "errors"

// ErrNoSessionCookie is returned when the inbound request carries no usable
// session cookie. Absent, forged and corrupted cookies all collapse into
// this single outcome.
var ErrNoSessionCookie = errors.New("no session cookie")
