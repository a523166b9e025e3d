// Package app orchestrates the processing of one statement directory:
// extraction per document, per-document JSON and Markdown outputs, then the
// reconciled composite report.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/JohnCastleman/eob-audit-tool/internal/claim"
	"github.com/JohnCastleman/eob-audit-tool/internal/dedupe"
	"github.com/JohnCastleman/eob-audit-tool/internal/extract"
	"github.com/JohnCastleman/eob-audit-tool/internal/reconcile"
	"github.com/JohnCastleman/eob-audit-tool/internal/report"
)

type App struct {
	cfg       Config
	providers extract.ProviderTable
}

func New(cfg Config) (*App, error) {
	a := &App{cfg: cfg, providers: extract.DefaultProviderTable()}
	if cfg.ProviderTablePath != "" {
		table, err := extract.LoadProviderTable(cfg.ProviderTablePath)
		if err != nil {
			return nil, err
		}
		a.providers = table
		log.Info().Str("path", cfg.ProviderTablePath).Int("entries", len(table)).Msg("loaded provider table")
	}
	return a, nil
}

// Run processes every statement document in the configured directory.
// HTML statements are *.html files; PDF statements arrive as *.txt files of
// already-extracted page text, pages separated by form feed. Each document
// yields a JSON claim list and a Markdown report; when anything was
// extracted, a reconciled composite report is written for the directory.
func (a *App) Run() error {
	dir := a.cfg.Dir
	if dir == "" {
		return fmt.Errorf("no statement directory configured")
	}

	htmlFiles, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return fmt.Errorf("list html statements: %w", err)
	}
	textFiles, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return fmt.Errorf("list pdf text statements: %w", err)
	}
	log.Info().Int("html", len(htmlFiles)).Int("pdfText", len(textFiles)).Str("dir", dir).Msg("statements found")

	var (
		htmlClaims []claim.Claim
		pdfClaims  []claim.Claim
		subFiles   []string
	)

	for _, path := range htmlFiles {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		claims := dedupe.HTMLClaims(extract.ClaimsFromHTML(string(b)))
		log.Info().Str("file", filepath.Base(path)).Int("claims", len(claims)).Msg("extracted html statement")
		if err := a.writeDocumentOutputs(path, claims); err != nil {
			return err
		}
		htmlClaims = append(htmlClaims, claims...)
		subFiles = append(subFiles, stemPath(path)+".md")
	}

	for _, path := range textFiles {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		pages := strings.Split(string(b), "\f")
		claims := extract.ClaimsFromPDFText(pages, a.providers)
		log.Info().Str("file", filepath.Base(path)).Int("claims", len(claims)).Msg("extracted pdf statement")
		if err := a.writeDocumentOutputs(path, claims); err != nil {
			return err
		}
		pdfClaims = append(pdfClaims, claims...)
		subFiles = append(subFiles, stemPath(path)+".md")
	}

	if len(htmlClaims) == 0 && len(pdfClaims) == 0 {
		log.Warn().Msg("no claims extracted; composite report not written")
		return nil
	}

	// Per-document passes leave duplicates shared between files, so collapse
	// the aggregates once more before reconciling.
	htmlClaims = dedupe.HTMLClaims(htmlClaims)
	pdfClaims = dedupe.PDFClaims(pdfClaims)

	merged := reconcile.Merge(htmlClaims, pdfClaims)
	title := a.cfg.Title
	if title == "" {
		title = fmt.Sprintf("%s - Claims Summary (PDF and HTML)", filepath.Base(dir))
	}
	md := report.Markdown(merged, title, report.Options{IncludeSource: true, SubFiles: relativeAll(dir, subFiles)})

	compositePath := filepath.Join(dir, filepath.Base(dir)+".md")
	if err := a.writeFile(compositePath, []byte(md)); err != nil {
		return err
	}
	if a.cfg.CompositePDF != "" {
		if err := writeReportPDF(md, a.cfg.CompositePDF); err != nil {
			return fmt.Errorf("write composite pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.CompositePDF).Msg("wrote composite pdf")
	}

	var pdfOnly, htmlOnly, both int
	for _, c := range merged {
		switch c.Source {
		case claim.SourcePDF:
			pdfOnly++
		case claim.SourceBoth:
			both++
		default:
			htmlOnly++
		}
	}
	log.Info().
		Int("total", len(merged)).
		Int("pdfOnly", pdfOnly).
		Int("htmlOnly", htmlOnly).
		Int("both", both).
		Str("out", compositePath).
		Msg("wrote composite report")
	return nil
}

// writeDocumentOutputs writes the per-document JSON claim list and Markdown
// report next to the source document.
func (a *App) writeDocumentOutputs(docPath string, claims []claim.Claim) error {
	stem := stemPath(docPath)

	data, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal claims for %s: %w", docPath, err)
	}
	if err := a.writeFile(stem+".json", append(data, '\n')); err != nil {
		return err
	}

	title := filepath.Base(stem) + " Claims Summary"
	md := report.Markdown(claims, title, report.Options{})
	return a.writeFile(stem+".md", []byte(md))
}

// writeFile is the single place the overwrite policy lives: existing
// outputs are skipped unless -force was given.
func (a *App) writeFile(path string, data []byte) error {
	if !a.cfg.Force {
		if _, err := os.Stat(path); err == nil {
			log.Info().Str("path", path).Msg("output exists; skipping (use -force to overwrite)")
			return nil
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("wrote output")
	return nil
}

func stemPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// relativeAll rewrites sub-file paths relative to dir so the links in the
// composite report stay valid when the directory moves.
func relativeAll(dir string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(dir, p); err == nil {
			out = append(out, rel)
		} else {
			out = append(out, p)
		}
	}
	return out
}
