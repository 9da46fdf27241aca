package canvas

import "errors"

var (
	// ErrNoSession is returned by drawing and layer operations issued
	// before CreateSession.
	ErrNoSession = errors.New("canvas: no drawing session")

	// ErrUnbalancedRestore is returned by Restore when no save frame is
	// open. It aborts the render pass.
	ErrUnbalancedRestore = errors.New("canvas: restore without matching save")

	// ErrPassAborted is wrapped by every operation issued after a
	// stack-discipline violation, until the next CreateSession.
	ErrPassAborted = errors.New("canvas: render pass aborted")

	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("canvas: invalid size")
)
