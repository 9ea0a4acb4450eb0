package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/tax_tables.yaml
var defaultTablesYAML []byte

type tablesDocument struct {
	TaxYears []domain.TaxYearTables `yaml:"tax_years"`
}

// DefaultTables returns the tables shipped with the binary
func DefaultTables() (domain.StaticTables, error) {
	tables, err := ParseTables(defaultTablesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded tax tables: %w", err)
	}
	return tables, nil
}

// LoadTables reads a tax-table document from disk. An empty path yields the
// embedded tables.
func LoadTables(path string) (domain.StaticTables, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax tables %s: %w", path, err)
	}
	return ParseTables(data)
}

// ParseTables decodes and validates a tax-table document
func ParseTables(data []byte) (domain.StaticTables, error) {
	var doc tablesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tax tables: %w", err)
	}
	if len(doc.TaxYears) == 0 {
		return nil, fmt.Errorf("tax table document defines no year")
	}

	tables := make(domain.StaticTables, len(doc.TaxYears))
	for i := range doc.TaxYears {
		t := doc.TaxYears[i]
		if _, dup := tables[t.Year]; dup {
			return nil, fmt.Errorf("tax year %d defined twice", t.Year)
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		tables[t.Year] = &t
	}
	return tables, nil
}
