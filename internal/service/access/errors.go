package access

import "errors"

// ErrAccessDenied is returned by callers that turn a negative Decision into
// an error; the Decision's Reason carries the user-facing explanation.
var ErrAccessDenied = errors.New("access denied")
