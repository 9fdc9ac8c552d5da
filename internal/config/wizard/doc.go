// Package wizard implements the interactive deployment configuration wizard
// behind "deploykit init".
package wizard
