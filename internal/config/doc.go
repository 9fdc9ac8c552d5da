// Package config loads and validates the declarative deployment
// configuration file.
//
// The file is the YAML front-end to pkg/builder: it carries the base
// parameters of one API deployment (name, image, port, replicas) plus the
// optional capabilities to attach (environment variables, a managed
// database). Structural validation happens here; capability interactions
// are checked by the builder at build time.
package config
