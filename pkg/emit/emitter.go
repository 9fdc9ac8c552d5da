package emit

import (
	"context"

	"github.com/deploykit/deploykit/pkg/descriptor"
)

// Emitter consumes a finalized DeploymentSpec. Implementations own resource
// creation, drift detection, and retries; callers only guarantee the logical
// shape of the spec.
type Emitter interface {
	// Emit hands the spec to the provisioning engine. The spec is complete
	// and validated; a returned error means nothing was applied.
	Emit(ctx context.Context, spec *descriptor.DeploymentSpec) error
}
