package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Bundle is the JSON structure for catalog export/import.
type Bundle struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Messages   []Message         `json:"messages"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Exporter provides catalog export functionality.
type Exporter struct {
	catalog *Catalog
}

// NewExporter creates a new catalog exporter.
func NewExporter(catalog *Catalog) *Exporter {
	return &Exporter{catalog: catalog}
}

// Export writes the catalog contents to a writer in JSON format.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	bundle := Bundle{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Messages:   e.catalog.Messages(),
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(bundle); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// ExportToFile exports the catalog to a file.
// The path is provided by the caller and is intentionally user-controlled.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return e.Export(f, metadata)
}

// Importer provides catalog import functionality.
type Importer struct {
	catalog *Catalog
}

// NewImporter creates a new catalog importer.
func NewImporter(catalog *Catalog) *Importer {
	return &Importer{catalog: catalog}
}

// Import reads messages from a reader and loads them into the catalog.
// Messages without a key or language code are skipped.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	var bundle Bundle
	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  bundle.Version,
		Metadata: bundle.Metadata,
	}

	for _, msg := range bundle.Messages {
		if msg.Key == "" || msg.LanguageCode == "" {
			result.Skipped++
			continue
		}
		i.catalog.Add(msg)
		result.Imported++
	}

	return result, nil
}

// ImportFromFile imports messages from a file.
// The path is provided by the caller and is intentionally user-controlled.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(f)
}

// ImportResult contains statistics about the import operation.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Skipped  int
}
