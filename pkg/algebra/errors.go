package algebra

import errorsmod "cosmossdk.io/errors"

// Codespace identifies errors raised by this package.
const Codespace = "algebra"

var (
	// ErrZeroNorm is returned by guarded operations that would divide by a
	// zero magnitude.
	ErrZeroNorm = errorsmod.Register(Codespace, 2, "quaternion has zero norm")
	// ErrNonFinite is returned when an input component is NaN or infinite.
	ErrNonFinite = errorsmod.Register(Codespace, 3, "quaternion has non-finite component")
)
