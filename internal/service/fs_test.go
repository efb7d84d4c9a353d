package service

import (
	"io/fs"
	"os"
	"testing"
)

// osDirFS exposes the repository root so the real migrations are applied.
func osDirFS(t *testing.T) fs.FS {
	t.Helper()
	return os.DirFS("../..")
}
