package md2tex

import (
	"errors"
	"testing"
)

const validInput = "---\ntitle: Spec\nid: DOC-1\nrevision: 2\nmanufacturer_name: Acme\n---\n# Hello\n"

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantBody string
		wantErr  error
	}{
		{
			name:     "valid front matter and body",
			raw:      validInput,
			wantBody: "# Hello\n",
		},
		{
			name:     "body keeps further delimiters verbatim",
			raw:      "---\ntitle: Spec\n---\nbefore\n---\nafter\n",
			wantBody: "before\n---\nafter\n",
		},
		{
			name:     "empty body",
			raw:      "---\ntitle: Spec\n---\n",
			wantBody: "",
		},
		{
			name:    "no delimiters",
			raw:     "# Just markdown\n",
			wantErr: ErrFrontMatter,
		},
		{
			name:    "single delimiter",
			raw:     "---\ntitle: Spec\n",
			wantErr: ErrFrontMatter,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: ErrFrontMatter,
		},
		{
			name:    "malformed YAML",
			raw:     "---\ntitle: [unclosed\n---\nbody\n",
			wantErr: ErrFrontMatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, fm, err := Extract(tt.raw)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if fm == nil {
				t.Error("front matter = nil, want mapping")
			}
		})
	}
}

func TestExtractParsesMapping(t *testing.T) {
	t.Parallel()

	_, fm, err := Extract(validInput)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	title, err := fm.Title()
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if title != "Spec" {
		t.Errorf("Title() = %q, want %q", title, "Spec")
	}

	id, err := fm.ID()
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if id != "DOC-1" {
		t.Errorf("ID() = %q, want %q", id, "DOC-1")
	}

	name, err := fm.ManufacturerName()
	if err != nil {
		t.Fatalf("ManufacturerName() error = %v", err)
	}
	if name != "Acme" {
		t.Errorf("ManufacturerName() = %q, want %q", name, "Acme")
	}
}

func TestFrontMatterRevision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fm      FrontMatter
		want    string
		wantErr error
	}{
		{
			name: "integer revision",
			fm:   FrontMatter{"revision": 2},
			want: "2",
		},
		{
			name: "uint64 revision as produced by the YAML parser",
			fm:   FrontMatter{"revision": uint64(7)},
			want: "7",
		},
		{
			name: "string revision",
			fm:   FrontMatter{"revision": "2a"},
			want: "2a",
		},
		{
			name:    "missing revision",
			fm:      FrontMatter{},
			wantErr: ErrMissingKey,
		},
		{
			name:    "non-scalar revision",
			fm:      FrontMatter{"revision": []any{1, 2}},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.fm.Revision()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Revision() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Revision() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Revision() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrontMatterRequiredStringKeys(t *testing.T) {
	t.Parallel()

	fm := FrontMatter{"title": 42}

	if _, err := fm.Title(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Title() on non-string error = %v, want %v", err, ErrInvalidValue)
	}
	if _, err := fm.ID(); !errors.Is(err, ErrMissingKey) {
		t.Errorf("ID() on missing key error = %v, want %v", err, ErrMissingKey)
	}
}

func TestFrontMatterDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fm       FrontMatter
		want     string
		wantOK   bool
		wantErr  error
	}{
		{
			name:   "string date",
			fm:     FrontMatter{"date": "2026-08-30"},
			want:   "2026-08-30",
			wantOK: true,
		},
		{
			name:   "absent date",
			fm:     FrontMatter{},
			wantOK: false,
		},
		{
			name:    "non-string date",
			fm:      FrontMatter{"date": 20260830},
			wantOK:  true,
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := tt.fm.Date()

			if ok != tt.wantOK {
				t.Errorf("Date() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Date() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Date() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Date() = %q, want %q", got, tt.want)
			}
		})
	}
}
