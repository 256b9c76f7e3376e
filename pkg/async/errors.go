package async

import "errors"

// ErrPanic wraps a panic recovered from an asynchronous function.
var ErrPanic = errors.New("async: function panicked")
