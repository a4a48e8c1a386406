// Package server exposes the schedule computation over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/loan-schedule/internal/config"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/output"
	"github.com/iwvelando/loan-schedule/pkg/schedule"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	generator     *schedule.Generator
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the schedule API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		generator:     schedule.NewGenerator(logger),
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Schedule API endpoint (YAML or JSON loan definition)
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// scheduleRequest is the loan definition accepted by the API. It mirrors the
// config file's loan shape.
type scheduleRequest struct {
	Name              string   `json:"name" yaml:"name"`
	Principal         float64  `json:"principal" yaml:"principal"`
	InterestRate      float64  `json:"interestRate" yaml:"interestRate"`
	Term              int      `json:"term" yaml:"term"`
	DownPayment       float64  `json:"downPayment" yaml:"downPayment"`
	StartDate         string   `json:"startDate" yaml:"startDate"`
	PropertyTaxes     float64  `json:"propertyTaxes" yaml:"propertyTaxes"`
	HomeInsurance     float64  `json:"homeInsurance" yaml:"homeInsurance"`
	HOAFees           float64  `json:"hoaFees" yaml:"hoaFees"`
	PMI               float64  `json:"pmi" yaml:"pmi"`
	MaxMonthlyPayment *float64 `json:"maxMonthlyPayment" yaml:"maxMonthlyPayment"`
}

type scheduleResponse struct {
	Loan     string            `json:"loan"`
	Capped   bool              `json:"capped"`
	Schedule schedule.Schedule `json:"schedule"`
	Summary  schedule.Summary  `json:"summary"`
	CSV      string            `json:"csv"`
	Duration string            `json:"duration"`
}

type errorResponse struct {
	Error               string   `json:"error"`
	MaxMonthlyPayment   *float64 `json:"maxMonthlyPayment,omitempty"`
	TotalMonthlyPayment *float64 `json:"totalMonthlyPayment,omitempty"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err))
		return
	}

	request, err := decodeRequest(body, r.Header.Get("Content-Type"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode loan definition: %v", err))
		return
	}

	loan := config.Loan{
		Name:              request.Name,
		Principal:         request.Principal,
		InterestRate:      request.InterestRate,
		Term:              request.Term,
		DownPayment:       request.DownPayment,
		StartDate:         request.StartDate,
		PropertyTaxes:     request.PropertyTaxes,
		HomeInsurance:     request.HomeInsurance,
		HOAFees:           request.HOAFees,
		PMI:               request.PMI,
		MaxMonthlyPayment: request.MaxMonthlyPayment,
	}

	params, err := loan.Parameters()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.generator.Adjust(params, loan.MaxMonthlyPayment)
	if err != nil {
		var capErr *schedule.InvalidCapError
		if errors.As(err, &capErr) {
			h.logger.Error("schedule request failed",
				zap.String("op", "server.handleSchedule"),
				zap.Int("status", http.StatusUnprocessableEntity),
				zap.Error(capErr),
			)
			h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:               capErr.Error(),
				MaxMonthlyPayment:   &capErr.MaxMonthlyPayment,
				TotalMonthlyPayment: &capErr.TotalMonthlyPayment,
			})
			return
		}
		var paramsErr *schedule.InvalidParametersError
		if errors.As(err, &paramsErr) {
			h.respondError(w, http.StatusBadRequest, paramsErr.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	csv := output.CsvString([]output.LoanResult{{
		Name:     loan.Name,
		Capped:   loan.MaxMonthlyPayment != nil,
		Schedule: result,
	}})

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Loan:     loan.Name,
		Capped:   loan.MaxMonthlyPayment != nil,
		Schedule: result,
		Summary:  result.Summarize(),
		CSV:      csv,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func decodeRequest(body []byte, contentType string) (scheduleRequest, error) {
	var request scheduleRequest
	if strings.Contains(contentType, "json") {
		if err := json.Unmarshal(body, &request); err != nil {
			return request, err
		}
		return request, nil
	}
	if err := yaml.Unmarshal(body, &request); err != nil {
		return request, err
	}
	return request, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Error("schedule request failed",
		zap.String("op", "server.handleSchedule"),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
