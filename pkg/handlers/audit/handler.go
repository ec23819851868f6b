package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/adapters"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/server/middleware"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/analysis"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/ledger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// errBadRequest marks request decoding and validation failures.
var errBadRequest = errors.New("bad request")

type Handler struct {
	svc analysis.Service
}

func NewHandler(svc analysis.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetBenchmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	industry := chi.URLParam(r, "industry")

	table, err := h.svc.Benchmarks(ctx, industry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapBenchmarkTableDomainToApi(industry, table))
}

func (h *Handler) AnalyzeFinancials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.FinancialAnalysisRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := adapters.MapFinancialRequestApiToDomain(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fa, err := h.svc.AnalyzeFinancials(ctx, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := adapters.MapFinancialAnalysisDomainToApi(fa)
	res.AnalysisID = analysisID(r)
	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) CheckCompliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ComplianceCheckRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	overview, err := h.svc.CheckCompliance(ctx, adapters.MapComplianceRequestApiToDomain(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := adapters.MapComplianceOverviewDomainToApi(overview)
	res.AnalysisID = analysisID(r)
	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) AssessRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RiskAssessmentRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	assessment, err := h.svc.AssessRisk(ctx, adapters.MapRiskRequestApiToDomain(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := adapters.MapRiskAssessmentDomainToApi(assessment)
	res.AnalysisID = analysisID(r)
	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AuditRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := adapters.MapAuditRequestApiToDomain(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.svc.Audit(ctx, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapAuditReportDomainToApi(analysisID(r), report))
}

func (h *Handler) SuggestSamples(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SamplingRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := adapters.MapSamplingRequestApiToDomain(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.svc.SuggestSamples(ctx, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := adapters.MapSamplingPlanDomainToApi(plan)
	res.AnalysisID = analysisID(r)
	writeJSON(w, r, http.StatusOK, res)
}

// analysisID reuses the request id so responses correlate with request logs.
func analysisID(r *http.Request) string {
	if id := middleware.RequestID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}

// decode reads a JSON body keeping numbers exact and validates it.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func statusFor(err error) int {
	var verr *ledger.ValidationError
	switch {
	case errors.Is(err, errBadRequest), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Warn().Err(err).Msg("request rejected")
	}
	writeJSON(w, r, status, api.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
