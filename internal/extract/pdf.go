package extract

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/JohnCastleman/eob-audit-tool/internal/claim"
	"github.com/JohnCastleman/eob-audit-tool/internal/normalize"
)

// The statement tables carry eleven currency columns per line; billed is
// column 1, plan payment column 5, the member's share column 11.
const (
	amountColumns   = 11
	billedColumn    = 0
	planPayColumn   = 4
	youOweColumn    = 10
	defaultStatus   = "In-Network"
	unknownProvider = "Unknown"
)

var (
	claimMarkerRe = regexp.MustCompile(`CLAIM # ([A-Z0-9]+)`)
	patientRe     = regexp.MustCompile(`Patient:\s*([A-Z,\s]+)`)

	serviceDate4Re = regexp.MustCompile(`Service Dates:\s+(\d{2}/\d{2}/20\d{2})`)
	serviceDate2Re = regexp.MustCompile(`Service Dates:\s+(\d{2}/\d{2}/\d{2})`)

	currencyRe   = regexp.MustCompile(`\$[\d,]+\.\d{2}`)
	claimTotalRe = regexp.MustCompile(`CLAIM TOTAL((?:\s+\$[\d,]+\.\d{2}){11})`)
	detailLineRe = regexp.MustCompile(`(IMAGING|SPECIALIST|RADIOLOGY|PREVENTATIVE|PHYSICAL|ANESTHESIA|ORTHOTICS|CARE)[^\n]*((?:\s+\$[\d,]+\.\d{2}){11})`)
	grandTotalRe = regexp.MustCompile(`GRAND TOTAL.*?((?:\s+\$[\d,]+\.\d{2}){11})`)

	providerLabelRe = regexp.MustCompile(`Provider:\s*([A-Z\s&.,]+?)\s+Processed`)
	statusLabelRe   = regexp.MustCompile(`Processed As:\s+([^\n]+)`)
	serviceDescRe   = regexp.MustCompile(`(ORTHOTICS|ANESTHESIA SERVICE|PAIN MANAGEMENT|PHYSICAL THERAPY|IMAGING|SPECIALIST OFFICE VISIT|RADIOLOGY SERVICE|PREVENTATIVE CARE)`)
)

// ClaimsFromPDFText extracts claims from the text of one PDF statement,
// given per-page extracted text. Pages are concatenated first: claim
// sections routinely straddle page breaks, so page boundaries carry no
// meaning here. Sections that lack a well-formed eleven-amount total line
// are dropped silently; undercounting is the accepted failure mode.
func ClaimsFromPDFText(pages []string, providers ProviderTable) []claim.Claim {
	text := strings.Join(pages, "")
	member := patientName(text)

	markers := claimMarkerRe.FindAllStringSubmatchIndex(text, -1)
	claims := make([]claim.Claim, 0, len(markers))
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		section := text[m[0]:end]
		claimNum := text[m[2]:m[3]]

		billed, planPay, youOwe, ok := sectionAmounts(section)
		if !ok {
			log.Debug().Str("claim", claimNum).Msg("no eleven-amount total line; section skipped")
			continue
		}
		date := sectionDate(section)
		if date == "" {
			log.Debug().Str("claim", claimNum).Msg("no service date; section skipped")
			continue
		}

		claims = append(claims, claim.Claim{
			Date:        date,
			Member:      member,
			Provider:    sectionProvider(section, providers),
			Service:     sectionService(section),
			Billed:      billed,
			PlanPayment: planPay,
			YouOwe:      youOwe,
			Status:      sectionStatus(section),
		})
	}
	return claims
}

// patientName pulls the member name from the document's single Patient
// label, collapsing line breaks and dropping the stray middle-initial
// artifact the text extraction leaves behind, then display-cases it.
func patientName(text string) string {
	m := patientRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(m[1])
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, " P", "")
	return normalize.MemberName(strings.TrimSpace(name))
}

// sectionDate prefers the 4-digit-year date form; the 2-digit form is only
// a fallback because the 2-digit pattern also matches the prefix of a
// 4-digit date.
func sectionDate(section string) string {
	m := serviceDate4Re.FindStringSubmatch(section)
	if m == nil {
		m = serviceDate2Re.FindStringSubmatch(section)
	}
	if m == nil {
		return ""
	}
	return normalize.Date(m[1])
}

// sectionAmounts extracts the three reportable amounts through a three-tier
// fallback: the CLAIM TOTAL line, then a service-category detail line, then
// the GRAND TOTAL line. Each tier demands exactly eleven currency numbers.
func sectionAmounts(section string) (billed, planPay, youOwe string, ok bool) {
	var run string
	if m := claimTotalRe.FindStringSubmatch(section); m != nil {
		run = m[1]
	} else if m := detailLineRe.FindStringSubmatch(section); m != nil {
		run = m[2]
	} else if m := grandTotalRe.FindStringSubmatch(section); m != nil {
		run = m[1]
	} else {
		return "", "", "", false
	}
	amounts := currencyRe.FindAllString(run, -1)
	if len(amounts) != amountColumns {
		return "", "", "", false
	}
	return normalize.Amount(amounts[billedColumn]),
		normalize.Amount(amounts[planPayColumn]),
		normalize.Amount(amounts[youOweColumn]),
		true
}

// sectionProvider reads the Provider label when present, otherwise falls
// back to the substring lookup table of known provider name variants.
func sectionProvider(section string, providers ProviderTable) string {
	if m := providerLabelRe.FindStringSubmatch(section); m != nil {
		return strings.TrimSpace(m[1])
	}
	if name, ok := providers.Lookup(section); ok {
		return name
	}
	return unknownProvider
}

func sectionStatus(section string) string {
	if m := statusLabelRe.FindStringSubmatch(section); m != nil {
		return strings.TrimSpace(m[1])
	}
	return defaultStatus
}

// sectionService maps the section onto the coarse service-category
// vocabulary; empty when nothing matches.
func sectionService(section string) string {
	if m := serviceDescRe.FindStringSubmatch(section); m != nil {
		return m[1]
	}
	return ""
}
