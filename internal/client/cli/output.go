package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

const (
	timeLayout = "2006-01-02 15:04"
	pageSize   = 20
)

// intArg parses args[i] as a positive integer, or returns def when absent.
func intArg(args []string, i, def int) (int, error) {
	if len(args) <= i {
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, &userError{fmt.Sprintf("%q is not a positive number", args[i])}
	}
	return n, nil
}

// requireArg returns args[i] or a usage error.
func requireArg(args []string, i int, usage string) (string, error) {
	if len(args) <= i {
		return "", &userError{"Usage: " + usage}
	}
	return args[i], nil
}

func expiryLabel(f models.Food, now time.Time) string {
	days, ok := f.DaysUntilExpiry(now)
	switch {
	case !ok:
		return "no expiry"
	case f.ExpiryDate.Before(now):
		return "expired"
	case days == 0:
		return "expires today"
	case days == 1:
		return "expires tomorrow"
	}
	return fmt.Sprintf("expires in %d days", days)
}

// optional renders a nullable number, "-" when unset.
func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func pageFooter(page int, shown int, total int64) string {
	return fmt.Sprintf("page %d: %d shown, %d total", page, shown, total)
}
