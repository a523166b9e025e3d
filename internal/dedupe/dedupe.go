// Package dedupe collapses duplicate claims emitted by a single source.
// HTML statements render the same claim table twice (desktop and mobile
// markup), so every claim can arrive twice from one document.
package dedupe

import "github.com/JohnCastleman/eob-audit-tool/internal/claim"

// HTMLClaims keeps the first-seen claim per 5-field dedup key. The key
// includes status so a charge and its refund, which share all four amounts,
// stay distinct. Before returning, the transient EOB reference is stripped;
// it survives only as the ReferenceMarker boolean the reconciler consumes.
// The pass is idempotent, so it also collapses duplicates across several
// HTML documents of one statement period without losing derived markers.
func HTMLClaims(claims []claim.Claim) []claim.Claim {
	seen := map[string]struct{}{}
	out := make([]claim.Claim, 0, len(claims))
	for _, c := range claims {
		key := c.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		c.ReferenceMarker = c.ReferenceMarker || c.EOBReference != ""
		c.EOBReference = ""
		out = append(out, c)
	}
	return out
}

// PDFClaims collapses claims gathered from several PDF documents of one
// statement period, keeping the first-seen claim per 4-field match key.
// Within a single document no deduplication is needed (each claim section
// is visited once), but the same claim can repeat across documents, and a
// duplicate surviving to reconciliation would emit twice.
func PDFClaims(claims []claim.Claim) []claim.Claim {
	seen := map[string]struct{}{}
	out := make([]claim.Claim, 0, len(claims))
	for _, c := range claims {
		key := c.MatchKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
