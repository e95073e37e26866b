package dateutil_test

import (
	"errors"
	"testing"

	"github.com/alnah/go-md2tex/internal/dateutil"
)

func TestFormatTitleDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		iso     string
		want    string
		wantErr error
	}{
		{
			name: "regular date",
			iso:  "2026-08-30",
			want: "August 30, 2026",
		},
		{
			name: "single-digit day is not padded",
			iso:  "2026-01-02",
			want: "January 2, 2026",
		},
		{
			name:    "european order rejected",
			iso:     "30/08/2026",
			wantErr: dateutil.ErrInvalidDate,
		},
		{
			name:    "incomplete date",
			iso:     "2026-08",
			wantErr: dateutil.ErrInvalidDate,
		},
		{
			name:    "empty",
			iso:     "",
			wantErr: dateutil.ErrInvalidDate,
		},
		{
			name:    "out-of-range month",
			iso:     "2026-13-01",
			wantErr: dateutil.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dateutil.FormatTitleDate(tt.iso)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FormatTitleDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatTitleDate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatTitleDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
