// Package geo resolves free-text country values to ISO 3166-1 alpha-3 codes.
package geo

import (
	"strings"

	"github.com/biter777/countries"
)

// Resolver maps a country value (name, alpha-2 or alpha-3 code) to an
// alpha-3 code. ok is false when the value does not resolve.
type Resolver func(country string) (alpha3 string, ok bool)

// ISO3166 resolves through the countries reference table.
func ISO3166(country string) (string, bool) {
	country = strings.TrimSpace(country)
	if country == "" {
		return "", false
	}
	c := countries.ByName(country)
	if c == countries.Unknown {
		return "", false
	}
	return c.Alpha3(), true
}
