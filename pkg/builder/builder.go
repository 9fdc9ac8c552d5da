package builder

import (
	"strconv"

	"github.com/deploykit/deploykit/internal/util/naming"
	"github.com/deploykit/deploykit/pkg/descriptor"
)

// Workload field keys understood by emitters. Environment entries carry the
// "env." prefix; secret-backed entries carry "secretRef." with a
// "{secretName}/{key}" value so the plaintext never enters the workload.
const (
	FieldImage    = "image"
	FieldPort     = "port"
	FieldReplicas = "replicas"

	EnvFieldPrefix    = "env."
	SecretFieldPrefix = "secretRef."
)

// Builder accumulates the declarative description of one API deployment.
// It is exclusively owned by its caller and not safe for concurrent use;
// construct one Builder per deployment.
type Builder struct {
	name     string
	image    string
	port     int
	replicas int

	capabilities []capability
	consumed     bool
}

// New creates a builder from the base parameters. Validation is deferred to
// Build, so chained configuration calls never fail.
func New(name, image string, port, replicas int) *Builder {
	return &Builder{
		name:     name,
		image:    image,
		port:     port,
		replicas: replicas,
	}
}

// attach appends a capability request. Duplicate kinds are detected at
// Build, not here, to keep chaining order-independent.
func (b *Builder) attach(c capability) *Builder {
	b.capabilities = append(b.capabilities, c)
	return b
}

// Build validates the accumulated configuration, resolves each capability in
// attachment order, and returns the finalized DeploymentSpec. On success the
// builder is consumed and cannot be built again. On error no spec is
// returned and the builder stays usable, so the caller can correct the
// configuration and retry.
func (b *Builder) Build() (*descriptor.DeploymentSpec, error) {
	if b.consumed {
		return nil, &InvalidConfigurationError{Field: "builder", Message: "already consumed by a previous Build"}
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	workloadFields := map[string]string{
		FieldImage:    b.image,
		FieldPort:     strconv.Itoa(b.port),
		FieldReplicas: strconv.Itoa(b.replicas),
	}

	var extras []descriptor.ResourceDescriptor
	for _, c := range b.capabilities {
		res, err := c.resolve(b.name)
		if err != nil {
			return nil, err
		}
		// Last-write-wins: a later capability overrides keys set earlier.
		for k, v := range res.workload {
			workloadFields[k] = v
		}
		extras = append(extras, res.extras...)
	}

	spec := &descriptor.DeploymentSpec{
		Workload: descriptor.New(descriptor.KindWorkload, naming.Workload(b.name), workloadFields),
		NetworkService: descriptor.New(descriptor.KindNetworkService, naming.Service(b.name), map[string]string{
			FieldPort: strconv.Itoa(b.port),
			"app":     b.name,
		}),
		Extras: extras,
	}

	b.consumed = true
	return spec, nil
}

// validate checks the base parameters and capability set. All checks run at
// build time so errors surface together with capability interactions.
func (b *Builder) validate() error {
	if b.name == "" {
		return &InvalidConfigurationError{Field: "name", Message: "name is required"}
	}
	if b.image == "" {
		return &InvalidConfigurationError{Field: "image", Message: "image is required"}
	}
	if b.port <= 0 || b.port >= 65536 {
		return &InvalidConfigurationError{Field: "port", Message: "port must be between 1 and 65535"}
	}
	if b.replicas < 1 {
		return &InvalidConfigurationError{Field: "replicas", Message: "replicas must be at least 1"}
	}

	seen := make(map[string]bool, len(b.capabilities))
	for _, c := range b.capabilities {
		if seen[c.kind()] {
			return &DuplicateCapabilityError{Kind: c.kind()}
		}
		seen[c.kind()] = true
	}
	return nil
}
