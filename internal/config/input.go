package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/minikeyz/french-tax-system/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of simulation files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New()}
}

// LoadFromFile loads a simulation from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Simulation, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a simulation document. JSON is accepted as
// the YAML subset it is.
func (ip *InputParser) Parse(data []byte) (*domain.Simulation, error) {
	var sim domain.Simulation
	if err := yaml.Unmarshal(data, &sim); err != nil {
		return nil, fmt.Errorf("%w: failed to parse simulation: %v", domain.ErrInvalidInput, err)
	}

	if err := ip.ValidateSimulation(&sim); err != nil {
		return nil, fmt.Errorf("simulation validation failed: %w", err)
	}

	return &sim, nil
}

// ValidateSimulation runs the struct-tag rules then the domain checks
func (ip *InputParser) ValidateSimulation(sim *domain.Simulation) error {
	// Horizon first so that a zero horizon is reported as such
	if sim.InvestmentTopFiscalYear < 1 {
		return sim.Validate()
	}

	if err := ip.validate.Struct(sim); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return sim.Validate()
}
