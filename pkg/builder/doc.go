// Package builder composes the resource descriptors of one API deployment.
//
// A Builder starts from base parameters (name, image, port, replicas) and
// accumulates optional capabilities such as a managed database. Nothing is
// validated or resolved until Build: capability interactions can only be
// checked once the full set is known, so configuration calls are cheap and
// order-independent while field merges stay order-sensitive
// (last-attached wins on key collision). Build is all-or-nothing: it either
// returns a complete descriptor.DeploymentSpec or an error and no spec.
//
// The builder performs no provisioning. The finalized spec is handed to an
// emit.Emitter, which is where the external provisioning engine takes over.
package builder
