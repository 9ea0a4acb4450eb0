package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders the report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveSimulation writes a simulation as YAML, e.g. to seed a new input file.
func SaveSimulation(sim *domain.Simulation, filename string) error {
	b, err := yaml.Marshal(sim)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
