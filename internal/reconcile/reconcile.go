// Package reconcile merges the deduplicated HTML claim set and the PDF
// claim set for one statement period into a single provenance-tagged list.
package reconcile

import (
	"github.com/rs/zerolog/log"

	"github.com/JohnCastleman/eob-audit-tool/internal/claim"
	"github.com/JohnCastleman/eob-audit-tool/internal/normalize"
)

// Merge reconciles the two sources. Matching is driven by the HTML side:
// only HTML claims that carried a reference marker look for a PDF
// counterpart, through the 4-field match key. A matched pair becomes one
// record tagged BOTH whose fields come from the HTML side (its status text
// is the richer one); the PDF record is consumed. Unmatched HTML claims are
// tagged HTML when they carried a marker, HTML-no-icon when they never did.
// PDF claims nobody matched are tagged PDF. The result is sorted newest
// first, with unparseable dates last.
//
// Matching is many-to-one tolerant: several HTML claims can share one
// 4-field key (they differ only in status) and each independently claims
// the same PDF record. Whether that is the intended semantics is an open
// question inherited from the source data; the behavior is preserved, not
// fixed.
//
// Either source may be empty; reconciliation never fails.
func Merge(htmlClaims, pdfClaims []claim.Claim) []claim.Claim {
	// First claim per key wins the index slot, like every other first-seen
	// map in this pipeline.
	pdfByKey := make(map[string]int, len(pdfClaims))
	for i, c := range pdfClaims {
		key := c.MatchKey()
		if _, ok := pdfByKey[key]; !ok {
			pdfByKey[key] = i
		}
	}

	out := make([]claim.Claim, 0, len(htmlClaims)+len(pdfClaims))
	matchedKeys := make(map[string]struct{})

	for _, hc := range htmlClaims {
		tag := claim.SourceHTMLNoIcon
		if hc.ReferenceMarker {
			tag = claim.SourceHTML
			key := hc.MatchKey()
			if i, ok := pdfByKey[key]; ok {
				tag = claim.SourceBoth
				if _, done := matchedKeys[key]; !done {
					logProviderDivergence(hc, pdfClaims[i])
				}
				matchedKeys[key] = struct{}{}
			}
		}
		hc.Source = tag
		out = append(out, hc)
	}

	// A matched key consumes every PDF record that shares it; otherwise a
	// duplicate-key PDF record would resurface as a standalone PDF row
	// after its twin merged into a BOTH record.
	for _, pc := range pdfClaims {
		if _, ok := matchedKeys[pc.MatchKey()]; ok {
			continue
		}
		pc.Source = claim.SourcePDF
		out = append(out, pc)
	}

	claim.SortByDateDesc(out)
	return out
}

// logProviderDivergence surfaces matched pairs whose provider match keys
// disagree. The 4-field key ignores the provider on purpose, so this is
// diagnostics, not a veto.
func logProviderDivergence(h, p claim.Claim) {
	hk := normalize.ProviderMatchKey(h.Provider)
	pk := normalize.ProviderMatchKey(p.Provider)
	if hk != pk {
		log.Debug().
			Str("date", h.Date).
			Str("html_provider", h.Provider).
			Str("pdf_provider", p.Provider).
			Msg("matched claims name different providers")
	}
}
