// Package descriptor defines the declarative resource model shared by the
// builder and the emitters.
//
// A ResourceDescriptor describes one desired resource (a workload, a network
// service, a managed database, or a credential) as an immutable value.
// A DeploymentSpec groups the descriptors of one logical API deployment:
// always a workload and a network service, plus any extras contributed by
// attached capabilities.
package descriptor
