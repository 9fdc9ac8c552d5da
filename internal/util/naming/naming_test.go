package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	app := "my-api"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Workload",
			got:      Workload(app),
			expected: "my-api",
		},
		{
			name:     "Service",
			got:      Service(app),
			expected: "my-api",
		},
		{
			name:     "Database",
			got:      Database(app),
			expected: "my-api-db",
		},
		{
			name:     "Credential",
			got:      Credential(app),
			expected: "my-api-db-credential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	labels := Labels("my-api")

	if labels["app"] != "my-api" {
		t.Errorf("app label = %q, expected %q", labels["app"], "my-api")
	}
	if labels["app.kubernetes.io/managed-by"] != "deploykit" {
		t.Errorf("managed-by label = %q, expected %q", labels["app.kubernetes.io/managed-by"], "deploykit")
	}
}
