package bridge

import "errors"

var (
	// ErrAlreadyRunning is returned when Start is called on a running bridge.
	ErrAlreadyRunning = errors.New("bridge is already running")

	// ErrSameTransport rejects bridging a transport onto itself.
	ErrSameTransport = errors.New("source and target transports must differ")

	// ErrPlaintextSource rejects non-HTTPS source URLs.
	ErrPlaintextSource = errors.New("source URL must use https")

	// ErrMethodUnsupported is returned for methods outside the proxied set.
	ErrMethodUnsupported = errors.New("method not supported by bridge")
)
