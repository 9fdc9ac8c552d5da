// Package v1alpha1 contains API Schema definitions for the deploykit.io v1alpha1 API group
// +kubebuilder:object:generate=true
// +groupName=deploykit.io
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ManagedDatabaseSpec defines the desired state of a provisioned database
// instance. The provisioning engine watches these objects and performs the
// actual resource creation; deploykit only renders them.
type ManagedDatabaseSpec struct {
	// Engine is the database engine
	// +kubebuilder:validation:Enum=postgres
	// +kubebuilder:default="postgres"
	Engine string `json:"engine"`

	// Size is the instance size tier
	// +kubebuilder:validation:Enum=micro;small;medium;large
	Size string `json:"size"`

	// DatabaseName is the logical database to create
	DatabaseName string `json:"databaseName"`

	// CredentialSecretRef names the Secret holding the generated
	// username/password pair
	CredentialSecretRef string `json:"credentialSecretRef"`
}

// ManagedDatabaseStatus defines the observed state of a database instance.
// Populated by the provisioning engine, never by deploykit.
type ManagedDatabaseStatus struct {
	// Phase is the lifecycle phase of the instance
	// +optional
	Phase DatabasePhase `json:"phase,omitempty"`

	// Endpoint is the connection endpoint once provisioned
	// +optional
	Endpoint string `json:"endpoint,omitempty"`

	// Message provides additional status information
	// +optional
	Message string `json:"message,omitempty"`
}

// DatabasePhase is the lifecycle phase of a managed database.
type DatabasePhase string

const (
	// DatabasePhaseProvisioning means the instance is being created
	DatabasePhaseProvisioning DatabasePhase = "Provisioning"
	// DatabasePhaseReady means the instance accepts connections
	DatabasePhaseReady DatabasePhase = "Ready"
	// DatabasePhaseFailed means provisioning failed
	DatabasePhaseFailed DatabasePhase = "Failed"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Engine",type="string",JSONPath=".spec.engine"
// +kubebuilder:printcolumn:name="Size",type="string",JSONPath=".spec.size"
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"

// ManagedDatabase is the Schema for the manageddatabases API.
type ManagedDatabase struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ManagedDatabaseSpec   `json:"spec,omitempty"`
	Status ManagedDatabaseStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ManagedDatabaseList contains a list of ManagedDatabase.
type ManagedDatabaseList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ManagedDatabase `json:"items"`
}
