package optimize

import "errors"

var (
	// ErrInvalidContent indicates the payload is empty or does not start
	// with an SVG root tag or XML prolog. The message is the fixed,
	// user-facing text reported to callers.
	ErrInvalidContent = errors.New("content is not a valid SVG document")

	// ErrOptimizerFailed wraps any error surfaced by the optimization
	// engine. Never retried.
	ErrOptimizerFailed = errors.New("optimization failed")
)
