package version

import "testing"

func TestDefaultVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
}

func TestLdflagsOverride(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"
	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Fatalf("build metadata not overridable: %q %q %q", Version, GitCommit, BuildDate)
	}
}
