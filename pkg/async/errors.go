package async

import "errors"

// ErrTimeout indicates AwaitWithTimeout gave up before the computation
// completed.
var ErrTimeout = errors.New("async: await timed out")
