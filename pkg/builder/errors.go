package builder

import "fmt"

// InvalidConfigurationError reports a base parameter that failed validation
// at build time.
type InvalidConfigurationError struct {
	Field   string // Base parameter that failed validation
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// DuplicateCapabilityError reports the same capability kind attached more
// than once.
type DuplicateCapabilityError struct {
	Kind string // Capability kind that was attached twice
}

// Error implements the error interface.
func (e *DuplicateCapabilityError) Error() string {
	return fmt.Sprintf("capability %q attached more than once", e.Kind)
}

// CapabilityResolutionError reports a capability that could not be translated
// into descriptors.
type CapabilityResolutionError struct {
	Kind    string // Capability kind that failed to resolve
	Message string // Human-readable error message
	Cause   error  // Underlying error, if any
}

// Error implements the error interface.
func (e *CapabilityResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to resolve capability %q: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to resolve capability %q: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *CapabilityResolutionError) Unwrap() error {
	return e.Cause
}
