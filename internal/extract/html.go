// Package extract turns raw statement documents into canonical claims. Two
// extractors live here: a streaming state machine over HTML markup events
// and a section splitter over text pulled out of PDF statements.
package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/JohnCastleman/eob-audit-tool/internal/claim"
	"github.com/JohnCastleman/eob-audit-tool/internal/normalize"
)

// Raw is the per-claim field map captured from a source document before
// normalization. Missing fields stay empty.
type Raw struct {
	Date         string
	Member       string
	Provider     string
	Service      string
	Billed       string
	PlanPayment  string
	YouOwe       string
	Status       string
	EOBReference string
}

// Traditional-layout column order: cell 0 is a row ornament, then date,
// member, provider, billed, plan payment, you-owe, status.
const minTraditionalCells = 6

// ClaimsFromHTML extracts claims from one rendered HTML statement. The
// statement uses one of two mutually exclusive table layouts: a traditional
// one-row-per-claim table, or a stacked key/value layout where each claim
// spans several label/value rows (the mobile rendering). Cells of the
// stacked layout carry the st-key / st-val marker classes. When the stacked
// layout yields any claims it wins; otherwise the traditional rows are used.
func ClaimsFromHTML(markup string) []claim.Claim {
	rows, stacked := scanTables(markup)

	if len(stacked) > 0 {
		out := make([]claim.Claim, 0, len(stacked))
		for _, raw := range stacked {
			if c, ok := normalizeRaw(raw); ok {
				out = append(out, c)
			}
		}
		return out
	}

	out := make([]claim.Claim, 0, len(rows))
	for _, row := range rows {
		raw, ok := rawFromRow(row)
		if !ok {
			continue
		}
		if c, ok := normalizeRaw(raw); ok {
			out = append(out, c)
		}
	}
	return out
}

// scanTables runs the markup-event state machine once over the document and
// collects both layouts: traditional cell rows and stacked-layout claims.
func scanTables(markup string) (rows [][]string, stacked []Raw) {
	z := html.NewTokenizer(strings.NewReader(markup))

	var (
		inTBody    bool
		inRow      bool
		inKeyCell  bool
		inValCell  bool
		inDataCell bool

		cellBuf    strings.Builder
		currentRow []string
		rowClass   string
		rowKey     string
		rowVal     string
		haveKey    bool
		haveVal    bool
		linkTitle  string

		acc stackedAccumulator
	)

	resetCell := func() {
		cellBuf.Reset()
		inKeyCell, inValCell, inDataCell = false, false, false
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "tbody":
				inTBody = true
			case "tr":
				if !inTBody {
					break
				}
				inRow = true
				currentRow = currentRow[:0]
				rowClass = attrVal(tok, "class")
				rowKey, rowVal = "", ""
				haveKey, haveVal = false, false
				linkTitle = ""
			case "td":
				if !inRow {
					break
				}
				resetCell()
				switch class := attrVal(tok, "class"); {
				case strings.Contains(class, "st-key"):
					inKeyCell = true
				case strings.Contains(class, "st-val"):
					inValCell = true
				default:
					inDataCell = true
				}
			case "a":
				// A reference link inside a value cell carries the claim's
				// own PDF form token in its title attribute.
				if inValCell {
					linkTitle = attrVal(tok, "title")
				}
			}
		case html.TextToken:
			if inKeyCell || inValCell || inDataCell {
				cellBuf.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "td":
				text := normalize.Whitespace(cellBuf.String())
				switch {
				case inDataCell:
					currentRow = append(currentRow, text)
				case inKeyCell:
					rowKey, haveKey = text, true
				case inValCell:
					rowVal, haveVal = text, true
				}
				resetCell()
			case "tr":
				if !inRow {
					break
				}
				if len(currentRow) >= minTraditionalCells {
					rows = append(rows, append([]string(nil), currentRow...))
				}
				if haveKey && haveVal {
					acc.row(rowKey, rowVal, rowClass, linkTitle)
				}
				inRow = false
				currentRow = currentRow[:0]
			case "tbody":
				inTBody = false
			}
		}
	}

	acc.endOfInput()
	return rows, acc.claims
}

// rawFromRow maps one accepted traditional-layout row onto the field map.
// Header rows and rows whose date cell does not look like a date are
// rejected.
func rawFromRow(row []string) (Raw, bool) {
	date := strings.TrimSpace(row[1])
	if date == "Date" || !looksLikeDate(date) {
		return Raw{}, false
	}
	raw := Raw{Date: date}
	raw.Member = cellAt(row, 2)
	raw.Provider = cellAt(row, 3)
	raw.Billed = cellAt(row, 4)
	raw.PlanPayment = cellAt(row, 5)
	raw.YouOwe = cellAt(row, 6)
	raw.Status = cellAt(row, 7)
	return raw, true
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// looksLikeDate rejects cell text that cannot possibly be a date: no slash,
// no dash, and too short. Real parsing happens later in normalize.Date.
func looksLikeDate(s string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(s, "/") || strings.Contains(s, "-") || len(s) >= 6
}

// normalizeRaw converts a captured field map into a canonical claim. Records
// whose date normalizes to empty are discarded here, before deduplication.
func normalizeRaw(raw Raw) (claim.Claim, bool) {
	date := strings.TrimSpace(raw.Date)
	if !looksLikeDate(date) {
		return claim.Claim{}, false
	}
	iso := normalize.Date(date)
	if iso == "" {
		return claim.Claim{}, false
	}
	return claim.Claim{
		Date:         iso,
		Member:       normalize.MemberName(raw.Member),
		Provider:     normalize.ProviderDisplay(raw.Provider),
		Service:      strings.TrimSpace(raw.Service),
		Billed:       normalize.Amount(strings.TrimSpace(raw.Billed)),
		PlanPayment:  normalize.Amount(strings.TrimSpace(raw.PlanPayment)),
		YouOwe:       normalize.Amount(strings.TrimSpace(raw.YouOwe)),
		Status:       strings.TrimSpace(raw.Status),
		EOBReference: strings.TrimSpace(raw.EOBReference),
	}, true
}

func attrVal(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
