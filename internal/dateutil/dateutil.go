// Package dateutil formats front-matter dates for LaTeX title blocks.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a date that is not in ISO YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date")

// isoLayout is the only accepted input layout.
const isoLayout = "2006-01-02"

// titleLayout matches LaTeX's default \today rendering ("August 30, 2026").
const titleLayout = "January 2, 2006"

// FormatTitleDate converts an ISO YYYY-MM-DD date into the long form used
// on the title page.
func FormatTitleDate(iso string) (string, error) {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return "", fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, iso)
	}
	return t.Format(titleLayout), nil
}
