package extract

import "strings"

// flushTrigger names the transitions that close an in-progress claim in the
// stacked key/value layout. Claim boundaries in that layout are implicit, so
// the accumulator gives each boundary condition an explicit name.
type flushTrigger string

const (
	// triggerNewDateWhileOpen fires when a date-labeled row arrives while
	// the accumulator already holds a dated claim; the prior claim flushes
	// before the new date is stored.
	triggerNewDateWhileOpen flushTrigger = "new-date-while-open"
	// triggerTerminalMarker fires after a row whose value mentions
	// "details" or whose row element carries the extra-border marker class.
	triggerTerminalMarker flushTrigger = "terminal-marker-seen"
	// triggerEndOfInput fires once at end of document for any claim still
	// open.
	triggerEndOfInput flushTrigger = "end-of-input"
)

// stackedAccumulator builds claims from the stacked key/value table layout,
// one labeled row at a time. Labels are matched by substring against a fixed
// rule set; unrecognized labels are ignored.
type stackedAccumulator struct {
	cur         Raw
	providerSet bool
	claims      []Raw
}

// row feeds one label/value pair from a table row, along with the row's
// class attribute and the title of any hyperlink found in the value cell.
func (a *stackedAccumulator) row(label, value, rowClass, linkTitle string) {
	key := strings.ToLower(strings.TrimSpace(label))
	value = strings.TrimSpace(value)

	if strings.Contains(key, "date") && a.cur.Date != "" {
		a.flush(triggerNewDateWhileOpen)
	}

	switch {
	case strings.Contains(key, "date"):
		a.cur.Date = value
	case strings.Contains(key, "member"):
		a.cur.Member = value
	case strings.Contains(key, "facility"),
		strings.Contains(key, "physician"),
		strings.Contains(key, "merchant"):
		// First occurrence wins; the layout repeats the provider label.
		if !a.providerSet {
			a.cur.Provider = value
			a.providerSet = true
		}
	case strings.Contains(key, "billed") && strings.Contains(key, "amount"):
		a.cur.Billed = value
	case strings.Contains(key, "plan") && strings.Contains(key, "payment"):
		a.cur.PlanPayment = value
	case strings.Contains(key, "you may owe"),
		strings.Contains(key, "your cost"):
		a.cur.YouOwe = value
	case strings.Contains(key, "status"):
		a.cur.Status = value
	case strings.Contains(key, "eob"), strings.Contains(key, "reference"):
		// The reference token lives in the link's title attribute; the
		// visible link text is only a fallback.
		if linkTitle != "" {
			a.cur.EOBReference = linkTitle
		} else {
			a.cur.EOBReference = value
		}
	}

	if strings.Contains(strings.ToLower(value), "details") ||
		strings.Contains(rowClass, "extra-border") {
		a.flush(triggerTerminalMarker)
	}
}

// endOfInput flushes any claim still open when the document ends.
func (a *stackedAccumulator) endOfInput() {
	a.flush(triggerEndOfInput)
}

// flush emits the in-progress claim and resets the accumulator. A claim
// without a date is not a claim: the fields collected so far stay in place
// and keep accumulating until a date arrives.
func (a *stackedAccumulator) flush(flushTrigger) {
	if a.cur.Date == "" {
		return
	}
	a.claims = append(a.claims, a.cur)
	a.cur = Raw{}
	a.providerSet = false
}
