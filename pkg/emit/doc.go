// Package emit hands finalized deployment specs to the provisioning engine.
//
// The Emitter interface is the collaborator seam: deploykit never creates
// cloud resources itself, it only produces declarative descriptions. The
// ManifestEmitter implementation renders descriptors as Kubernetes-shaped
// YAML manifests (Deployment, Service, Secret, ManagedDatabase) that an
// external engine applies.
package emit
