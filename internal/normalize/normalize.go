// Package normalize holds the pure field normalizers applied to raw text
// captured from statement documents. Every function here is total: any
// string in, a string out, never an error.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{"01/02/2006", "01/02/06", "2006-01-02"}

// Date converts a service date to ISO 8601 (YYYY-MM-DD). Accepted input
// forms are MM/DD/YYYY, MM/DD/YY and YYYY-MM-DD. Unparseable input is
// returned unchanged; callers decide whether that is acceptable.
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// IsISODate reports whether s parses as a YYYY-MM-DD calendar date.
func IsISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

var amountStrip = regexp.MustCompile(`[$,\s]`)

// Amount strips currency punctuation ($, commas, whitespace) from a dollar
// amount, preserving the digits and decimal point exactly as captured so
// trailing zeros survive. Malformed input passes through minus the stripped
// characters; no numeric validation happens here.
func Amount(s string) string {
	if s == "" {
		return ""
	}
	return amountStrip.ReplaceAllString(s, "")
}

var (
	providerFacilitySuffix = regexp.MustCompile(`(?i)\s*physicians?\s*&\s*facilit(?:y|ies)\s*$`)
	providerHospitalSuffix = regexp.MustCompile(`(?i)\s*hospital\s*$`)
)

// ProviderDisplay trims a provider cell down to the facility or physician
// name: anything after an embedded <br marker is dropped (the statement
// stacks a street address into the same cell), and a trailing
// "Physician(s) & Facility(ies)" or "Hospital" label is removed.
func ProviderDisplay(s string) string {
	p := strings.TrimSpace(s)
	if p == "" {
		return ""
	}
	if i := strings.Index(strings.ToLower(p), "<br"); i >= 0 {
		p = p[:i]
	}
	p = providerFacilitySuffix.ReplaceAllString(p, "")
	p = providerHospitalSuffix.ReplaceAllString(p, "")
	return strings.TrimSpace(p)
}

var (
	corpSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`\s*LTD\s*$`),
		regexp.MustCompile(`\s*PLLC\s*$`),
		regexp.MustCompile(`\s*PA\s*$`),
		regexp.MustCompile(`\s*INC\.?\s*$`),
	}
	wsRun = regexp.MustCompile(`\s+`)
)

// ProviderMatchKey reduces a provider name to the form used when deciding
// whether two sources spell the same legal entity differently: upper-cased,
// trailing corporate suffixes (LTD, PLLC, PA, INC) removed, periods removed,
// whitespace collapsed. This form is never displayed.
func ProviderMatchKey(s string) string {
	p := strings.ToUpper(s)
	for _, re := range corpSuffixes {
		p = re.ReplaceAllString(p, "")
	}
	p = strings.ReplaceAll(p, ".", "")
	p = wsRun.ReplaceAllString(p, " ")
	return strings.TrimSpace(p)
}

var titleCaser = cases.Title(language.AmericanEnglish)

// MemberName display-cases a member/patient name ("JOHN DOE" -> "John Doe").
func MemberName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(titleCaser.String(s))
}

// Whitespace collapses internal whitespace runs to a single space and trims
// the ends. Applied to every cell captured from markup.
func Whitespace(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}
