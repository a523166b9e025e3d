// Package claim defines the canonical claim record shared by the extractors,
// the deduplicator and the reconciler.
package claim

import (
	"sort"

	"github.com/JohnCastleman/eob-audit-tool/internal/normalize"
)

// Source tags the provenance of a reconciled claim.
type Source string

const (
	// SourcePDF marks a claim found only in a PDF statement.
	SourcePDF Source = "PDF"
	// SourceHTML marks an HTML claim that carried a reference marker but
	// matched no PDF claim.
	SourceHTML Source = "HTML"
	// SourceHTMLNoIcon marks an HTML claim that never carried a reference
	// marker, so no PDF counterpart was expected.
	SourceHTMLNoIcon Source = "HTML-no-icon"
	// SourceBoth marks an HTML claim whose PDF counterpart was found and
	// consumed; the HTML fields win on overlap.
	SourceBoth Source = "BOTH"
)

// Claim is the canonical record for one insurance adjudication line item.
// Amount fields stay strings so captured precision survives untouched.
// The JSON names are the display field names used by every downstream
// consumer of the serialized claim list.
type Claim struct {
	Date        string `json:"Date"`
	Member      string `json:"Member"`
	Provider    string `json:"Facility/Physician"`
	Service     string `json:"Service"`
	Billed      string `json:"Billed Amt"`
	PlanPayment string `json:"Plan Payment"`
	YouOwe      string `json:"You May Owe"`
	Status      string `json:"Status"`
	Source      Source `json:"In PDF/HTML?,omitempty"`

	// EOBReference is the opaque token an HTML claim carries when it links
	// to its own PDF form. It exists only between extraction and
	// deduplication and never reaches output.
	EOBReference string `json:"-"`
	// ReferenceMarker records whether the claim carried any evidence that a
	// PDF counterpart exists. Derived by the deduplicator, consumed by the
	// reconciler.
	ReferenceMarker bool `json:"-"`
}

// MatchKey is the 4-field key used for cross-source matching. Provider and
// status are deliberately absent: the two sources spell providers
// differently, and the PDF side has no comparable status text.
func (c Claim) MatchKey() string {
	return c.Date + "|" + c.Billed + "|" + c.PlanPayment + "|" + c.YouOwe
}

// DedupKey is the 5-field key used for intra-HTML deduplication. It extends
// MatchKey with status because two HTML claims can legitimately share all
// four amounts, as a charge and its refund do, and differ only in status.
func (c Claim) DedupKey() string {
	return c.MatchKey() + "|" + c.Status
}

// SortByDateDesc orders claims newest first. A claim whose date is not a
// well-formed ISO date sorts after every claim with a real date; ties keep
// their existing relative order.
func SortByDateDesc(claims []Claim) {
	sort.SliceStable(claims, func(i, j int) bool {
		di, dj := claims[i].Date, claims[j].Date
		oki, okj := normalize.IsISODate(di), normalize.IsISODate(dj)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return di > dj
	})
}
