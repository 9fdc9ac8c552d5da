package builder

import (
	"fmt"
	"sort"

	"github.com/deploykit/deploykit/internal/secret"
	"github.com/deploykit/deploykit/internal/util/naming"
	"github.com/deploykit/deploykit/pkg/descriptor"
)

// CapabilityManagedDatabase is the kind reported by the managed database
// capability.
const CapabilityManagedDatabase = "managed-database"

// DatabaseSize is the size tier of a managed database instance.
type DatabaseSize string

const (
	SizeMicro  DatabaseSize = "micro"
	SizeSmall  DatabaseSize = "small"
	SizeMedium DatabaseSize = "medium"
	SizeLarge  DatabaseSize = "large"
)

// validDatabaseSizes contains all supported size tiers.
var validDatabaseSizes = map[DatabaseSize]bool{
	SizeMicro:  true,
	SizeSmall:  true,
	SizeMedium: true,
	SizeLarge:  true,
}

// ParseDatabaseSize validates a size tier given as a string.
func ParseDatabaseSize(s string) (DatabaseSize, error) {
	size := DatabaseSize(s)
	if !validDatabaseSizes[size] {
		return "", fmt.Errorf("unknown database size %q: must be one of %v", s, databaseSizeNames())
	}
	return size, nil
}

func databaseSizeNames() []string {
	names := make([]string, 0, len(validDatabaseSizes))
	for size := range validDatabaseSizes {
		names = append(names, string(size))
	}
	sort.Strings(names)
	return names
}

// DatabaseOptions configures the managed database capability.
type DatabaseOptions struct {
	// Size is the instance size tier.
	Size DatabaseSize
}

// AttachManagedDatabase attaches a managed PostgreSQL database to the
// deployment. Resolution at build time synthesizes a database descriptor and
// a fresh credential, and injects a connection string referencing the
// credential into the workload.
func (b *Builder) AttachManagedDatabase(opts DatabaseOptions) *Builder {
	return b.attach(&databaseCapability{opts: opts})
}

type databaseCapability struct {
	opts DatabaseOptions
}

func (c *databaseCapability) kind() string { return CapabilityManagedDatabase }

func (c *databaseCapability) resolve(app string) (resolution, error) {
	if !validDatabaseSizes[c.opts.Size] {
		return resolution{}, &CapabilityResolutionError{
			Kind:    c.kind(),
			Message: fmt.Sprintf("unknown database size %q, must be one of %v", c.opts.Size, databaseSizeNames()),
		}
	}

	password, err := secret.GeneratePassword(secret.DefaultLength)
	if err != nil {
		return resolution{}, &CapabilityResolutionError{
			Kind:    c.kind(),
			Message: "credential generation failed",
			Cause:   err,
		}
	}

	dbName := naming.Database(app)
	credName := naming.Credential(app)

	credential := descriptor.NewSensitive(descriptor.KindCredential, credName, map[string]string{
		"username": app,
		"password": password,
	})

	database := descriptor.New(descriptor.KindManagedDatabase, dbName, map[string]string{
		"engine":     "postgres",
		"size":       string(c.opts.Size),
		"database":   app,
		"credential": credName,
	})

	// The connection string references the credential through an env
	// substitution; the plaintext only ever lives in the credential
	// descriptor itself.
	return resolution{
		workload: map[string]string{
			EnvFieldPrefix + "DATABASE_URL":         fmt.Sprintf("postgres://%s:$(DATABASE_PASSWORD)@%s:5432/%s", app, dbName, app),
			SecretFieldPrefix + "DATABASE_PASSWORD": credName + "/password",
		},
		extras: []descriptor.ResourceDescriptor{database, credential},
	}, nil
}
