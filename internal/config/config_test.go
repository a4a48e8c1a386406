package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
loans:
  - name: house
    principal: 200000
    interestRate: 6.0
    term: 30
    downPayment: 40000
    startDate: "2026-01"
    propertyTaxes: 2400
    homeInsurance: 1200
    hoaFees: 50
    pmi: 75
    maxMonthlyPayment: 1800.00
  - name: car
    principal: 25000
    interestRate: 4.0
    term: 5
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error: %v", err)
	}

	if len(conf.Loans) != 2 {
		t.Fatalf("loaded %d loans, expected 2", len(conf.Loans))
	}

	house := conf.Loans[0]
	if house.Name != "house" || house.Principal != 200000 || house.Term != 30 {
		t.Errorf("unexpected first loan: %+v", house)
	}
	if house.MaxMonthlyPayment == nil || *house.MaxMonthlyPayment != 1800.00 {
		t.Errorf("first loan max monthly payment not loaded: %+v", house.MaxMonthlyPayment)
	}
	if house.HOAFees != 50 || house.PMI != 75 {
		t.Errorf("recurring costs not loaded: %+v", house)
	}

	car := conf.Loans[1]
	if car.MaxMonthlyPayment != nil {
		t.Errorf("second loan should have no max monthly payment, got %v", *car.MaxMonthlyPayment)
	}
	if car.StartDate != "" {
		t.Errorf("second loan start date = %q, expected empty", car.StartDate)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %s, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfiguration() accepted a missing file")
	}
}

func TestLoanParameters(t *testing.T) {
	loan := Loan{
		Name:          "house",
		Principal:     200000,
		InterestRate:  6.0,
		Term:          30,
		DownPayment:   40000,
		StartDate:     "2026-03",
		PropertyTaxes: 2400,
		HomeInsurance: 1200,
		HOAFees:       50,
		PMI:           75,
	}

	params, err := loan.Parameters()
	if err != nil {
		t.Fatalf("Parameters() unexpected error: %v", err)
	}
	if params.StartDate.Format(DateTimeLayout) != "2026-03" {
		t.Errorf("start date = %s, expected 2026-03", params.StartDate.Format(DateTimeLayout))
	}
	if params.Principal != 200000 || params.DownPayment != 40000 || params.Term != 30 {
		t.Errorf("unexpected parameters: %+v", params)
	}
	if params.HOAFees != 50 || params.PropertyTaxes != 2400 {
		t.Errorf("recurring costs not carried over: %+v", params)
	}
}

func TestLoanParametersEmptyStartDate(t *testing.T) {
	params, err := Loan{Name: "car", Principal: 25000, InterestRate: 4.0, Term: 5}.Parameters()
	if err != nil {
		t.Fatalf("Parameters() unexpected error: %v", err)
	}
	if !params.StartDate.IsZero() {
		t.Errorf("start date = %v, expected zero time", params.StartDate)
	}
}

func TestLoanParametersInvalidStartDate(t *testing.T) {
	if _, err := (Loan{Name: "bad", StartDate: "January 2026"}).Parameters(); err == nil {
		t.Error("Parameters() accepted an invalid start date")
	}
}

func TestValidateConfiguration(t *testing.T) {
	maxPayment := 1000.00
	conf := Configuration{
		Loans: []Loan{
			{Name: "house", Principal: 200000, InterestRate: 6.0, Term: 30},
			{Name: "capped-too-low", Principal: 200000, InterestRate: 6.0, Term: 30, MaxMonthlyPayment: &maxPayment},
			{Name: "bad-date", Principal: 1000, InterestRate: 1.0, Term: 1, StartDate: "soon"},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, expected 2: %v", len(warnings), warnings)
	}
}

func TestValidateConfigurationEmpty(t *testing.T) {
	warnings := (&Configuration{}).ValidateConfiguration()
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, expected 1 for empty config: %v", len(warnings), warnings)
	}
}
