package utils

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	reEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)
	reCedula   = regexp.MustCompile(`^[0-9]{7,9}$`)
	reTelefono = regexp.MustCompile(`^[0-9]{8}$`)
)

func ValidEmail(s string) bool    { return reEmail.MatchString(s) }
func ValidCedula(s string) bool   { return reCedula.MatchString(s) }
func ValidTelefono(s string) bool { return reTelefono.MatchString(s) }

// ValidPassword requires at least four lowercase letters and four digits.
func ValidPassword(s string) bool {
	var lower, digits int
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return lower >= 4 && digits >= 4
}

// NonNegativeInteger reports whether d is a whole amount >= 0.
func NonNegativeInteger(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Truncate(0))
}

var photoExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

func AllowedPhoto(filename string) bool {
	return photoExts[strings.ToLower(filepath.Ext(filename))]
}
