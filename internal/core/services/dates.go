package services

import (
	"fmt"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/apperrors"
)

const dateLayout = "2006-01-02"

// parseDate parses an ISO date string, mapping bad input to a validation
// error the handlers translate to a 400.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}
