// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/schedule"
	"github.com/iwvelando/loan-schedule/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for loan-schedule.
type Configuration struct {
	Loans   []Loan
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Loan describes one loan to compute a schedule for. PropertyTaxes and
// HomeInsurance are annual amounts; HOAFees and PMI are monthly amounts.
// MaxMonthlyPayment, when set, re-derives the schedule under that cap.
type Loan struct {
	Name              string
	Principal         float64
	InterestRate      float64
	Term              int
	DownPayment       float64
	StartDate         string // YYYY-MM; empty means the current month
	PropertyTaxes     float64
	HomeInsurance     float64
	HOAFees           float64
	PMI               float64
	MaxMonthlyPayment *float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Parameters converts a configured loan into the core's input type. An empty
// start date is left as the zero time so the generator's clock resolves it.
func (l Loan) Parameters() (schedule.LoanParameters, error) {
	params := schedule.LoanParameters{
		Name:          l.Name,
		Principal:     l.Principal,
		InterestRate:  l.InterestRate,
		Term:          l.Term,
		DownPayment:   l.DownPayment,
		PropertyTaxes: l.PropertyTaxes,
		HomeInsurance: l.HomeInsurance,
		HOAFees:       l.HOAFees,
		PMI:           l.PMI,
	}

	if l.StartDate != "" {
		startDate, err := time.Parse(DateTimeLayout, l.StartDate)
		if err != nil {
			return params, fmt.Errorf("loan %s has invalid start date %q: %w", l.Name, l.StartDate, err)
		}
		params.StartDate = startDate
	}

	return params, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Loans) == 0 {
		warnings = append(warnings, "no loans configured; nothing to compute")
	}

	for _, loan := range c.Loans {
		params, err := loan.Parameters()
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		warnings = append(warnings, validation.ValidateLoanParameters(params, loan.MaxMonthlyPayment)...)
	}

	return warnings
}
