// Package format holds the locale aware number, currency and date helpers
// plus the Arabic-Indic/Latin digit conversions used when parsing user input.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale = "fr-MA"
	CurrencyCode  = "MAD"

	arabicZero = '٠'
	arabicNine = '٩'
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

var (
	supported = []language.Tag{language.French, language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)

	// leading float literal, the part a lenient parser keeps
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

func printer(locale string) *message.Printer {
	if locale == "" {
		locale = DefaultLocale
	}
	return message.NewPrinter(language.Make(locale))
}

// FormatCurrency renders amount with exactly two fraction digits followed by
// the currency code, e.g. "216,00 MAD".
func FormatCurrency(amount float64, locale string) string {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return printer(locale).Sprint(number.Decimal(rounded,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)) + " " + CurrencyCode
}

func FormatNumber(value float64, locale string) string {
	rounded, _ := decimal.NewFromFloat(value).Round(3).Float64()
	return printer(locale).Sprint(number.Decimal(rounded,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(3),
	))
}

func dateLayouts(locale string) (full, short string) {
	if locale == "" {
		locale = DefaultLocale
	}
	_, idx, _ := matcher.Match(language.Make(locale))
	switch supported[idx] {
	case language.English:
		return "01/02/2006, 03:04 PM", "01/02/2006"
	default:
		return "02/01/2006 15:04", "02/01/2006"
	}
}

// arabicDigits reports whether numbers printed for locale use Arabic-Indic
// digits, so dates can follow the same numbering system.
func arabicDigits(locale string) bool {
	return printer(locale).Sprint(number.Decimal(0)) == string(arabicZero)
}

func localizeDigits(s, locale string) string {
	if arabicDigits(locale) {
		return ToArabicNumerals(s)
	}
	return s
}

func FormatDate(t time.Time, locale string) string {
	full, _ := dateLayouts(locale)
	return localizeDigits(t.Format(full), locale)
}

func FormatDateShort(t time.Time, locale string) string {
	_, short := dateLayouts(locale)
	return localizeDigits(t.Format(short), locale)
}

// ParseNumber reads a user typed number. Arabic-Indic digits are accepted,
// commas are decimal separators and whitespace is ignored. Like a lenient
// float parser it keeps the leading numeric part ("12kg" is 12). ok is false
// when nothing numeric could be read.
func ParseNumber(value string) (float64, bool) {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r == ',':
			return '.'
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, ToLatinNumerals(value))

	match := floatPrefix.FindString(normalized)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ToArabicNumerals(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return arabicZero + (r - '0')
		}
		return r
	}, value)
}

func ToLatinNumerals(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= arabicZero && r <= arabicNine {
			return '0' + (r - arabicZero)
		}
		return r
	}, value)
}

// IsRTL reports whether text contains any character of the Arabic block.
func IsRTL(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

func ConfidenceLevel(value float64) string {
	switch {
	case value >= 0.9:
		return ConfidenceHigh
	case value >= 0.75:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func ConfidencePercent(value float64) string {
	return fmt.Sprintf("%s%%", decimal.NewFromFloat(value*100).Round(0).String())
}
