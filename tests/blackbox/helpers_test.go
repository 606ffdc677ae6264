//go:build blackbox

package blackbox

import (
	"os"
	"strings"
	"testing"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

// extractRunID pulls the run ID out of simulate output ("Run ID: <ulid>").
func extractRunID(t *testing.T, out string) string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "Run ID: "); ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("no run ID in output:\n%s", out)
	return ""
}
