package app

// Config holds runtime configuration for one processing run.
type Config struct {
	// Dir is the statement directory to process: *.html files are rendered
	// HTML statements, *.txt files are page text extracted from PDF
	// statements (pages separated by form feed).
	Dir string

	// Title overrides the composite report title; empty derives it from
	// the directory name.
	Title string

	// ProviderTablePath optionally replaces the built-in PDF provider
	// fallback table with a YAML file.
	ProviderTablePath string

	// CompositePDF optionally writes the composite report as a PDF file at
	// this path, alongside the Markdown.
	CompositePDF string

	// Behavior
	Force   bool
	Verbose bool
}
