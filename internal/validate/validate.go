package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a resource identifier from a URL path.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name, bounded at 50 characters.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 50 {
		return "", false
	}
	return s, true
}

// StatusText validates a feed status update, bounded at 255 characters.
func StatusText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 255 {
		return "", false
	}
	return s, true
}

// Password enforces a length window; bcrypt truncates past 72 bytes.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}
