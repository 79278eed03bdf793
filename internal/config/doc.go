// Package config loads library settings from VULPES_-prefixed environment
// variables, with defaults that work without any environment at all.
package config
