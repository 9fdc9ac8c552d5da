package descriptor

import "fmt"

// DeploymentSpec is the finalized set of descriptors for one logical API
// deployment. Workload and NetworkService are always present after a
// successful build; Extras holds capability-contributed resources in the
// order their capabilities were attached.
type DeploymentSpec struct {
	Workload       ResourceDescriptor
	NetworkService ResourceDescriptor
	Extras         []ResourceDescriptor
}

// All returns every descriptor in emission order: workload, network service,
// then extras.
func (s *DeploymentSpec) All() []ResourceDescriptor {
	out := make([]ResourceDescriptor, 0, 2+len(s.Extras))
	out = append(out, s.Workload, s.NetworkService)
	out = append(out, s.Extras...)
	return out
}

// ExtrasOfKind returns the extras matching the given kind, preserving order.
func (s *DeploymentSpec) ExtrasOfKind(kind Kind) []ResourceDescriptor {
	var out []ResourceDescriptor
	for _, d := range s.Extras {
		if d.Kind() == kind {
			out = append(out, d)
		}
	}
	return out
}

// String renders a short summary for logs. Sensitive descriptors redact
// themselves.
func (s *DeploymentSpec) String() string {
	return fmt.Sprintf("deployment %s: %d resources", s.Workload.Name(), len(s.All()))
}
