package hints_test

import (
	"strings"
	"testing"

	"github.com/alnah/go-md2tex/internal/hints"
)

func TestHintsFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{
			name: "pandoc not found",
			hint: hints.ForPandocNotFound(),
			want: "install pandoc",
		},
		{
			name: "anchor drift",
			hint: hints.ForAnchorDrift(),
			want: "pandoc --version",
		},
		{
			name: "output directory",
			hint: hints.ForOutputDirectory(),
			want: "writable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing standard prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q does not contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	hint := hints.ForConfigNotFound([]string{
		"local.yaml",
		"/home/user/.config/go-md2tex/local.yaml",
	})
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint %q missing --config suggestion", hint)
	}
	if !strings.Contains(hint, ".config/go-md2tex") {
		t.Errorf("hint %q missing user config path", hint)
	}

	// Without searched paths, still suggests the flag.
	hint = hints.ForConfigNotFound(nil)
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint %q missing --config suggestion", hint)
	}
}
