// Package naming provides consistent naming functions for deployment resources.
//
// The workload and service share the application name; auxiliary resources
// follow the pattern {app}-{type} (for example {app}-db and
// {app}-db-credential) so related resources are easy to identify together.
package naming
