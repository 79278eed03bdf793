// Package vulpes is the stable boundary of the Vulpes browser engine core.
//
// The library exposes two capabilities to a host application:
//   - ExtractText: extract human-visible text from raw HTML bytes
//   - Fetch: fetch a URL over HTTP
//
// plus the lifecycle operations Init, Shutdown, IsInitialized, and Version.
// Context management (cookies, cache, multi-tab isolation) and the
// layout/render pipeline are future collaborators behind the same boundary
// and are not part of this package.
//
// Error Reporting:
//
// Every operation reports through the shared Code enumeration. Malformed
// markup is never an error: the extraction engine recovers tag soup, bad
// character references, and broken encodings into best-effort output with
// CodeOK. Only structural contract violations (oversized input, invalid URL,
// uninitialized library) surface as non-zero codes.
//
// Ownership:
//
// ExtractText and Fetch hand results to the caller as linear resources:
// exactly one Release per result, after which the result must not be used.
// Release on a nil result is a no-op, and an accidental repeat release is
// detected by the internal handle arena and ignored.
//
// Thread Safety:
//
// Init and Shutdown must run on a single designated goroutine and never
// concurrently with each other. All other operations may run concurrently
// from any goroutine; they observe the library state through an atomic check
// and fail with CodeNotInitialized outside the initialized window.
package vulpes
