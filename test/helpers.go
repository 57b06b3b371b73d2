package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns the path to a database file in a temporary directory that
// is cleaned up after the test has run.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "gorm.db")
}
