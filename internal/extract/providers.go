package extract

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// ProviderAlias maps a substring observed in a claim section to the
// canonical provider name it stands for.
type ProviderAlias struct {
	Substring string `yaml:"substring"`
	Canonical string `yaml:"canonical"`
}

// ProviderTable is the fallback lookup consulted when a claim section has
// no Provider label. It is ordered: the first alias whose substring appears
// in the section wins. The table is configuration data, not parsing logic;
// the built-in set covers the providers observed so far and is extended
// through configuration, never in code. There is no claim that the set is
// exhaustive.
type ProviderTable []ProviderAlias

// DefaultProviderTable returns the built-in provider name variants.
func DefaultProviderTable() ProviderTable {
	return ProviderTable{
		{Substring: "TEXAS ANESTHESIA PARTNERS PLLC", Canonical: "TEXAS ANESTHESIA PARTNERS PLLC"},
		{Substring: "TRAVIS D. HAYDEN", Canonical: "TRAVIS D. HAYDEN"},
		{Substring: "TRAVIS HAYDEN", Canonical: "TRAVIS D. HAYDEN"},
		{Substring: "JONATHAN D. RINGENBERG", Canonical: "JONATHAN D. RINGENBERG"},
		{Substring: "JONATHAN RINGENBERG", Canonical: "JONATHAN D. RINGENBERG"},
		{Substring: "ATHLETICO LTD", Canonical: "ATHLETICO LTD"},
		{Substring: "JOHN E. MCGARRY", Canonical: "JOHN E. MCGARRY"},
		{Substring: "JOHN MCGARRY", Canonical: "JOHN E. MCGARRY"},
		{Substring: "DAN M. NGUYEN", Canonical: "DAN M. NGUYEN"},
		{Substring: "DAN NGUYEN", Canonical: "DAN M. NGUYEN"},
		{Substring: "METHODIST CDI", Canonical: "METHODIST CDI"},
		{Substring: "QUEST DIAGNOSTIC", Canonical: "QUEST DIAGNOSTIC CLINICAL LAB I."},
		{Substring: "CATALYST PHYSICIAN", Canonical: "CATALYST PHYSICIAN GROUP NTX P"},
		{Substring: "TEXAS ONCOLOGY", Canonical: "TEXAS ONCOLOGY PA"},
	}
}

// LoadProviderTable reads a provider table from a YAML file. The file holds
// a list of {substring, canonical} entries and replaces the built-in table
// wholesale.
func LoadProviderTable(path string) (ProviderTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provider table: %w", err)
	}
	var table ProviderTable
	if err := yaml.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("parse provider table %s: %w", path, err)
	}
	for i, a := range table {
		if strings.TrimSpace(a.Substring) == "" || strings.TrimSpace(a.Canonical) == "" {
			return nil, fmt.Errorf("provider table %s: entry %d is missing substring or canonical", path, i)
		}
	}
	return table, nil
}

// Lookup returns the canonical name of the first alias whose substring
// appears in text.
func (t ProviderTable) Lookup(text string) (string, bool) {
	for _, a := range t {
		if strings.Contains(text, a.Substring) {
			return a.Canonical, true
		}
	}
	return "", false
}
