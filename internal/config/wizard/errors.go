package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errNameRequired  = errors.New("application name is required")
	errNameInvalid   = errors.New("application name may only contain lowercase letters, numbers, and hyphens")
	errImageRequired = errors.New("container image is required")
	errPortInvalid   = errors.New("port must be a number between 1 and 65535")
	errEnvInvalid    = errors.New("environment entries must be KEY=VALUE, one per line")
)
