package audit

import "github.com/go-chi/chi/v5"

// Routes mounts the audit endpoints under r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/benchmarks/{industry}", h.GetBenchmarks)
	r.Post("/financial/analyze", h.AnalyzeFinancials)
	r.Post("/compliance/check", h.CheckCompliance)
	r.Post("/risk/assess", h.AssessRisk)
	r.Post("/audit", h.Audit)
	r.Post("/testing/sampling", h.SuggestSamples)
}
