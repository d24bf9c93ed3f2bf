package chain

import "errors"

// Blending has no I/O and no recoverable failure modes. These sentinels
// flag precondition violations, programmer errors that produce no partial
// result.
var (
	ErrPoseCountMismatch   = errors.New("chain: rest/solved pose count mismatch")
	ErrNegativeChainLength = errors.New("chain: negative chain length")
)
