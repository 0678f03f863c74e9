package jwt

import (
	"strings"
	"time"
)

const hoursInDay = 24

// ParseDuration reads token lifetimes from config. It accepts everything
// time.ParseDuration does plus a "d" suffix for days, since refresh token
// expiries are usually given in days. Unparseable input yields zero.
func ParseDuration(s string) time.Duration {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		if d, err := time.ParseDuration(days + "h"); err == nil {
			return d * hoursInDay
		}
	}

	d, _ := time.ParseDuration(s)

	return d
}
