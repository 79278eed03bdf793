// Package lifecycle models the library's process-wide state as an explicit,
// testable object with atomic transitions.
//
// A Manager moves between two states:
//
//	Uninitialized --Initialize--> Initialized --Shutdown--> Uninitialized
//
// Initialize is idempotent and Shutdown is a no-op when not initialized.
// Both must run on a single designated goroutine; Initialized is an atomic
// read safe from any goroutine and is how concurrent entry points decide
// whether to proceed.
package lifecycle
