package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %q", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-10-01"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("GetVersion failed: got %q", got)
	}
	if got := GetFullVersion(); got != "1.2.0 (commit abc123, built 2026-10-01)" {
		t.Errorf("GetFullVersion failed: got %q", got)
	}
}
