// Package project inspects a workspace directory for the marker files that
// drive platform selection: package.json, *.csproj and pom.xml. Absence of a
// marker is a valid scan outcome; only real I/O failures are errors.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidRoot indicates the given project root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrScanFailed indicates a marker file exists but could not be read.
	ErrScanFailed = errors.New("project scan failed")
)
