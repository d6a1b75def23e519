// Package repository holds errors shared by document storage backends.
package repository

import "errors"

// ErrDocumentNotFound is returned when a requested document is not stored.
var ErrDocumentNotFound = errors.New("document not found")
