// Package report renders claim lists as Markdown. Rendering is display
// formatting only: every field arrives already normalized and is never
// re-derived here.
package report

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/JohnCastleman/eob-audit-tool/internal/claim"
)

// Options control the optional parts of a rendered report.
type Options struct {
	// IncludeSource adds the In PDF/HTML? provenance column; set for
	// composite (reconciled) reports.
	IncludeSource bool
	// SubFiles lists related per-document reports to link at the bottom.
	SubFiles []string
}

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// Markdown renders claims as a titled Markdown table, newest first.
func Markdown(claims []claim.Claim, title string, opts Options) string {
	ordered := append([]claim.Claim(nil), claims...)
	claim.SortByDateDesc(ordered)

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")

	if opts.IncludeSource {
		b.WriteString("| Date | Member | Facility/Physician | Service | Billed Amt | Plan Payment | You May Owe | Status | In PDF/HTML? |\n")
		b.WriteString("|------|--------|-------------------|---------|------------|--------------|-------------|--------|--------------|\n")
	} else {
		b.WriteString("| Date | Member | Facility/Physician | Service | Billed Amt | Plan Payment | You May Owe | Status |\n")
		b.WriteString("|------|--------|-------------------|---------|------------|--------------|-------------|--------|\n")
	}

	for _, c := range ordered {
		cols := []string{
			displayDate(c.Date),
			c.Member,
			c.Provider,
			c.Service,
			displayAmount(c.Billed),
			displayAmount(c.PlanPayment),
			displayAmount(c.YouOwe),
			c.Status,
		}
		if opts.IncludeSource {
			cols = append(cols, string(c.Source))
		}
		b.WriteString("| ")
		b.WriteString(strings.Join(cols, " | "))
		b.WriteString(" |\n")
	}

	if len(opts.SubFiles) > 0 {
		b.WriteString("\n## Related Files\n\n")
		for _, f := range opts.SubFiles {
			b.WriteString("- [")
			b.WriteString(filepath.Base(f))
			b.WriteString("](")
			b.WriteString(f)
			b.WriteString(")\n")
		}
	}

	return b.String()
}

// displayDate converts an ISO date to MM/DD/YY; anything that is not an ISO
// date passes through untouched.
func displayDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("01/02/06")
}

// displayAmount formats a plain decimal amount as $ plus comma grouping
// with two decimals. Non-numeric text passes through untouched.
func displayAmount(s string) string {
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return amountPrinter.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
