package descriptor

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesFields(t *testing.T) {
	t.Parallel()
	fields := map[string]string{"image": "nginx"}
	d := New(KindWorkload, "web", fields)

	fields["image"] = "mutated"

	image, ok := d.Field("image")
	require.True(t, ok)
	assert.Equal(t, "nginx", image)

	// The accessor also returns a copy.
	d.Fields()["image"] = "mutated"
	image, _ = d.Field("image")
	assert.Equal(t, "nginx", image)
}

func TestString_RedactsSensitiveFields(t *testing.T) {
	t.Parallel()
	cred := NewSensitive(KindCredential, "db-credential", map[string]string{
		"password": "super-secret-value!",
	})

	s := cred.String()
	assert.NotContains(t, s, "super-secret-value!")
	assert.Contains(t, s, "db-credential")

	// Plain descriptors print their fields.
	d := New(KindNetworkService, "web", map[string]string{"port": "80"})
	assert.Contains(t, d.String(), "port=80")
}

func TestString_ViaFmtVerbs(t *testing.T) {
	t.Parallel()
	cred := NewSensitive(KindCredential, "db-credential", map[string]string{
		"password": "super-secret-value!",
	})

	for _, verb := range []string{"%v", "%+v", "%s"} {
		out := fmt.Sprintf(verb, cred)
		assert.NotContains(t, out, "super-secret-value!", "verb %s leaked the credential", verb)
	}
}

func TestMarshalJSON_RedactsSensitiveFields(t *testing.T) {
	t.Parallel()
	cred := NewSensitive(KindCredential, "db-credential", map[string]string{
		"username": "api",
		"password": "super-secret-value!",
	})

	data, err := json.Marshal(cred)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "super-secret-value!")
	assert.Contains(t, string(data), Redacted)

	var decoded struct {
		Kind      Kind              `json:"kind"`
		Sensitive bool              `json:"sensitive"`
		Fields    map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, KindCredential, decoded.Kind)
	assert.True(t, decoded.Sensitive)
	assert.Equal(t, Redacted, decoded.Fields["password"])
}

func TestFieldKeys_Sorted(t *testing.T) {
	t.Parallel()
	d := New(KindWorkload, "web", map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, []string{"a", "b", "c"}, d.FieldKeys())
}
