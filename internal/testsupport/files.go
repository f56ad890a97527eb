package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTokens writes one gallery token per line to path and returns path.
func WriteTokens(t testing.TB, path string, tokens ...string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(tokens, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
