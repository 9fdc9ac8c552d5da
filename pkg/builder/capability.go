package builder

import "github.com/deploykit/deploykit/pkg/descriptor"

// capability is one optional infrastructure feature attached to a
// deployment. Each variant translates itself into workload field mutations
// and any auxiliary descriptors it implies. New variants only need a new
// type; existing ones are untouched.
type capability interface {
	// kind identifies the capability; at most one capability per kind may
	// be attached to a builder.
	kind() string

	// resolve translates the capability for the named application.
	resolve(app string) (resolution, error)
}

// resolution is the outcome of resolving one capability.
type resolution struct {
	// workload is merged into the workload descriptor's fields,
	// last-write-wins per key across capabilities.
	workload map[string]string

	// extras are appended to the DeploymentSpec in attachment order.
	extras []descriptor.ResourceDescriptor
}
