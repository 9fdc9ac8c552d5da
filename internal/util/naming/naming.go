package naming

import "fmt"

// Naming functions for deployment resources.
// Everything derived from one application follows consistent patterns so the
// provisioning engine can correlate and clean up related resources.

func Workload(app string) string {
	return app
}

func Service(app string) string {
	return app
}

func Database(app string) string {
	return fmt.Sprintf("%s-db", app)
}

func Credential(app string) string {
	return fmt.Sprintf("%s-db-credential", app)
}

// Labels returns the common label set applied to every rendered resource of
// an application.
func Labels(app string) map[string]string {
	return map[string]string{
		"app":                          app,
		"app.kubernetes.io/name":       app,
		"app.kubernetes.io/managed-by": "deploykit",
	}
}
