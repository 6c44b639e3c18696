package reactive

import "github.com/nodal/reactive/internal/core"

// Error kinds surfaced to callers, per section 6. Aliased rather than
// wrapped so errors.As against the internal/core type still matches.
type (
	CircularDependencyError = core.CircularDependencyError
	NullishSignalValueError = core.NullishSignalValueError
	InvalidSignalValueError = core.InvalidSignalValueError
	InvalidCallbackError    = core.InvalidCallbackError
)
