package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cartera-go/internal/model"
	"cartera-go/internal/services/reporting"
)

type reportHandler struct {
	service *reporting.Service
}

// pipelineRoutes mounts every aggregation under its report name.
func (h *reportHandler) pipelineRoutes(r chi.Router) {
	for _, report := range reporting.PipelineReports() {
		name := report.Name
		r.Get("/"+name, func(w http.ResponseWriter, r *http.Request) {
			rows, err := h.service.Pipeline(r.Context(), name)
			if err != nil {
				writeInternalError(w, r, err)
				return
			}
			writeOK(w, http.StatusOK, "", rows)
		})
	}
}

func (h *reportHandler) sheetRoutes(r chi.Router) {
	r.Get("/numero-proyectos", h.projectCount)
	r.Get("/analisis", h.analysis)
	r.Get("/analisis-completo", h.fullAnalysis)
	for _, col := range reporting.Columns {
		col := col
		r.Get("/"+col.Name, func(w http.ResponseWriter, r *http.Request) {
			counts, err := h.service.CountColumn(r.Context(), col)
			if err != nil {
				writeInternalError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"total":   len(counts),
				"data":    counts,
			})
		})
	}
}

func (h *reportHandler) statisticsRoutes(r chi.Router) {
	r.Get("/resumen", h.summary)
	r.Get("/proyectos-por-profesor", h.fold("Proyectos por profesor", reporting.ProjectsPerProfessor))
	r.Get("/proyectos-por-tematica", h.fold("Proyectos por temática", reporting.ProjectsPerTopic))
	r.Get("/proyectos-por-unidad-academica", h.fold("Proyectos por unidad académica", reporting.ProjectsPerUnit))
	r.Get("/profesores-por-unidad-academica", h.fold("Profesores por unidad académica", reporting.ProfessorsPerUnit))
}

func (h *reportHandler) projectCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.SheetCount(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"total_proyectos": count,
	})
}

func (h *reportHandler) analysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.service.Analyze(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", analysis)
}

func (h *reportHandler) fullAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.service.AnalyzeFull(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", analysis)
}

func (h *reportHandler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Resumen de montos por institución", summary)
}

func (h *reportHandler) fold(title string, fold func([]model.SheetRow) []reporting.Count) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.service.SheetReport(r.Context(), fold)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": title,
			"total":   len(counts),
			"data":    counts,
		})
	}
}
