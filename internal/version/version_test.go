package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestPrettyWithoutColor(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = true

	cases := map[string]string{
		"1.2.3":      "1.2.3",
		"0.1.0-dev":  "0.1.0-dev",
		"1.2.3-rc.1": "1.2.3-rc.1",
		"not-semver": "not-semver",
		"":           "",
	}
	for in, want := range cases {
		Version = in
		if got := Pretty(); got != want {
			t.Errorf("Pretty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrettyColoured(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = false
	Version = "1.2.3"

	if got := Pretty(); got == "1.2.3" {
		t.Fatalf("expected escape sequences, got %q", got)
	}
}

func TestShort(t *testing.T) {
	orig := GitCommit
	t.Cleanup(func() { GitCommit = orig })

	GitCommit = "abc123def4567890"
	if got := Short(); got != "abc123def456" {
		t.Fatalf("Short() = %q", got)
	}
	GitCommit = "abc"
	if got := Short(); got != "abc" {
		t.Fatalf("Short() = %q", got)
	}
}
