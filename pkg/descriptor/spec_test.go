package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentSpec_All(t *testing.T) {
	t.Parallel()
	spec := &DeploymentSpec{
		Workload:       New(KindWorkload, "api", nil),
		NetworkService: New(KindNetworkService, "api", nil),
		Extras: []ResourceDescriptor{
			New(KindManagedDatabase, "api-db", nil),
			NewSensitive(KindCredential, "api-db-credential", nil),
		},
	}

	all := spec.All()
	require.Len(t, all, 4)
	assert.Equal(t, KindWorkload, all[0].Kind())
	assert.Equal(t, KindNetworkService, all[1].Kind())
	assert.Equal(t, KindManagedDatabase, all[2].Kind())
	assert.Equal(t, KindCredential, all[3].Kind())
}

func TestDeploymentSpec_ExtrasOfKind(t *testing.T) {
	t.Parallel()
	spec := &DeploymentSpec{
		Workload:       New(KindWorkload, "api", nil),
		NetworkService: New(KindNetworkService, "api", nil),
		Extras: []ResourceDescriptor{
			New(KindManagedDatabase, "api-db", nil),
			NewSensitive(KindCredential, "api-db-credential", nil),
		},
	}

	dbs := spec.ExtrasOfKind(KindManagedDatabase)
	require.Len(t, dbs, 1)
	assert.Equal(t, "api-db", dbs[0].Name())

	assert.Empty(t, spec.ExtrasOfKind(KindWorkload))
}
