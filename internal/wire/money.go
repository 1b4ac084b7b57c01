package wire

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Prices travel as decimal strings ("9.99") and are held as whole cents.
var rePrice = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// ParsePrice converts a wire price (decimal string or JSON number) to cents.
func ParsePrice(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		if !rePrice.MatchString(s) {
			return 0, errors.New("must be a non-negative decimal with at most two places")
		}
		whole, frac, _ := strings.Cut(s, ".")
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n > math.MaxInt64/100-1 {
			return 0, errors.New("out of range")
		}
		cents := n * 100
		if frac != "" {
			if len(frac) == 1 {
				frac += "0"
			}
			f, _ := strconv.ParseInt(frac, 10, 64)
			cents += f
		}
		return cents, nil
	case float64:
		if x < 0 {
			return 0, errors.New("must be non-negative")
		}
		if x > float64(math.MaxInt64/100-1) {
			return 0, errors.New("out of range")
		}
		// Reject sub-cent precision instead of rounding it away. The
		// tolerance absorbs float noise in two-place values like 9.99.
		cents := x * 100
		r := math.Round(cents)
		if math.Abs(cents-r) > 1e-6 {
			return 0, errors.New("must be a non-negative decimal with at most two places")
		}
		return int64(r), nil
	}
	return 0, errors.New("must be a decimal string or number")
}

// FormatPrice renders cents as a two-place decimal string.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
