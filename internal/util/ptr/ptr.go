// Package ptr provides helper functions for creating pointers to primitive types.
package ptr

// Int32 returns a pointer to the given int32 value.
func Int32(i int32) *int32 { return &i }

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }
