package validate

import (
	"regexp"
	"strings"

	"circular/internal/domain"
)

var (
	// WhatsApp handle: international digits-only, e.g. 5511999998888
	reWhatsApp = regexp.MustCompile(`^[0-9]{8,15}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reUser     = regexp.MustCompile(`^[A-Za-z0-9._-]{1,40}$`)
)

// Name validates a displayable customer or item name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

func WhatsApp(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reWhatsApp.MatchString(s)
}

// ID validates a resource identifier (customer/item ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Size(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.ValidSize(s)
}

func ItemGender(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.ValidItemGender(s)
}

func Interest(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.ValidInterest(s)
}

// Category validates a free-form category label.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

func Price(v float64) bool { return v >= 0 }

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUser.MatchString(s)
}

// Password enforces a simple length window for login and rotation.
func Password(s string) bool {
	l := len(s)
	return l >= 8 && l <= 72 // bcrypt input cap
}
