// Package handle tracks results whose ownership has crossed the library
// boundary. Results are linear resources: acquired once, released once. The
// arena makes an accidental repeat release structurally harmless by turning
// it into a detected no-op instead of a fault.
package handle
