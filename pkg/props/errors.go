package props

import "errors"

var (
	// Apply errors 🪪
	ErrUnknownKey       = errors.New("❌ unknown identity field")
	ErrFieldNotWritable = errors.New("❌ identity field not writable")
)
