package descriptor

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the type of resource a descriptor describes.
type Kind string

const (
	// KindWorkload is the running container unit of a deployment.
	KindWorkload Kind = "workload"
	// KindNetworkService exposes a workload inside the cluster.
	KindNetworkService Kind = "network-service"
	// KindManagedDatabase is a managed relational database instance.
	KindManagedDatabase Kind = "managed-database"
	// KindCredential is a generated secret value (marked sensitive).
	KindCredential Kind = "credential"
)

// Redacted replaces the field values of sensitive descriptors in any
// printable representation.
const Redacted = "[redacted]"

// ResourceDescriptor is an immutable description of one desired resource.
// The zero value is not a valid descriptor; use New or NewSensitive.
type ResourceDescriptor struct {
	kind      Kind
	name      string
	fields    map[string]string
	sensitive bool
}

// New creates a descriptor. The field map is copied, so later mutation of
// the argument does not affect the descriptor.
func New(kind Kind, name string, fields map[string]string) ResourceDescriptor {
	return ResourceDescriptor{
		kind:   kind,
		name:   name,
		fields: copyFields(fields),
	}
}

// NewSensitive creates a descriptor whose field values must never appear in
// logs or printable output. Downstream consumers use the sensitive marker to
// apply redaction.
func NewSensitive(kind Kind, name string, fields map[string]string) ResourceDescriptor {
	d := New(kind, name, fields)
	d.sensitive = true
	return d
}

// Kind returns the resource kind.
func (d ResourceDescriptor) Kind() Kind { return d.kind }

// Name returns the resource name, unique within a DeploymentSpec.
func (d ResourceDescriptor) Name() string { return d.name }

// Sensitive reports whether the descriptor carries secret values.
func (d ResourceDescriptor) Sensitive() bool { return d.sensitive }

// Field returns the value of a single configuration field.
func (d ResourceDescriptor) Field(key string) (string, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Fields returns a copy of the configuration fields.
func (d ResourceDescriptor) Fields() map[string]string {
	return copyFields(d.fields)
}

// FieldKeys returns the field keys in sorted order.
func (d ResourceDescriptor) FieldKeys() []string {
	keys := make([]string, 0, len(d.fields))
	for k := range d.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the descriptor for logs. Sensitive field values are never
// included.
func (d ResourceDescriptor) String() string {
	if d.sensitive {
		return fmt.Sprintf("%s/%s (sensitive, %d fields)", d.kind, d.name, len(d.fields))
	}
	return fmt.Sprintf("%s/%s %v", d.kind, d.name, d.orderedFields())
}

// MarshalJSON implements json.Marshaler. Sensitive field values are redacted.
func (d ResourceDescriptor) MarshalJSON() ([]byte, error) {
	fields := d.fields
	if d.sensitive {
		fields = make(map[string]string, len(d.fields))
		for k := range d.fields {
			fields[k] = Redacted
		}
	}
	return json.Marshal(struct {
		Kind      Kind              `json:"kind"`
		Name      string            `json:"name"`
		Sensitive bool              `json:"sensitive,omitempty"`
		Fields    map[string]string `json:"fields,omitempty"`
	}{d.kind, d.name, d.sensitive, fields})
}

// orderedFields renders fields as key=value pairs in sorted key order.
func (d ResourceDescriptor) orderedFields() []string {
	pairs := make([]string, 0, len(d.fields))
	for _, k := range d.FieldKeys() {
		pairs = append(pairs, k+"="+d.fields[k])
	}
	return pairs
}

func copyFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
