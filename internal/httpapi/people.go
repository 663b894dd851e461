package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"cartera-go/internal/model"
	"cartera-go/internal/repositories"
)

const (
	photoSuccess = "success"
	photoSkipped = "skipped"
	photoFailed  = "failed"
	photoError   = "error"
)

// people serves academics and students: plain CRUD plus photo updates
// addressed by name instead of id.
type people struct {
	*resource[model.Persona, model.PersonaPatch]
	store repositories.PersonStore
}

func newPeople(name noun, store repositories.PersonStore) *people {
	return &people{
		resource: newResource[model.Persona, model.PersonaPatch](name, store),
		store:    store,
	}
}

func (p *people) routes(r chi.Router) {
	r.Patch("/update-photo", p.updatePhoto)
	r.Patch("/update-photos-batch", p.updatePhotosBatch)
	p.resource.routes(r)
}

func (p *people) updatePhoto(w http.ResponseWriter, r *http.Request) {
	var req model.PhotoUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := model.Validate(&req); err != nil {
		writeFail(w, http.StatusBadRequest, model.ValidationMessage(err))
		return
	}

	result, err := p.store.UpdatePhoto(r.Context(), req.Query(), req.LinkFoto)
	if err != nil {
		writeStoreError(w, r, p.name, err)
		return
	}
	if result.Modified == 0 {
		writeOK(w, http.StatusOK, "link_foto no modificado (el valor es idéntico)", nil)
		return
	}
	writeOK(w, http.StatusOK, "link_foto actualizado exitosamente", nil)
}

type photoQuery struct {
	Nombre   string         `json:"nombre"`
	APaterno string         `json:"a_paterno"`
	AMaterno model.Nullable `json:"a_materno"`
}

type photoResult struct {
	Query   photoQuery `json:"query"`
	Status  string     `json:"status"`
	Message string     `json:"message"`
}

type batchSummary struct {
	Total   int           `json:"total"`
	Success int           `json:"success"`
	Skipped int           `json:"skipped"`
	Failed  int           `json:"failed"`
	Errors  int           `json:"errors"`
	Results []photoResult `json:"results"`
}

// updatePhotosBatch applies each update independently and reports one
// result per input item, in order. The whole batch is rejected up front if
// any item is malformed.
func (p *people) updatePhotosBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []model.PhotoUpdate
	if err := decodeJSON(r, &reqs); err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if len(reqs) == 0 {
		writeFail(w, http.StatusBadRequest, "Se requiere al menos una actualización")
		return
	}
	for i := range reqs {
		if err := model.Validate(&reqs[i]); err != nil {
			writeFail(w, http.StatusBadRequest, fmt.Sprintf("elemento %d: %s", i, model.ValidationMessage(err)))
			return
		}
	}

	summary := batchSummary{Total: len(reqs), Results: make([]photoResult, 0, len(reqs))}
	for _, req := range reqs {
		item := photoResult{Query: photoQuery{Nombre: req.Nombre, APaterno: req.APaterno, AMaterno: req.AMaterno}}

		result, err := p.store.UpdatePhoto(r.Context(), req.Query(), req.LinkFoto)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			item.Status, item.Message = photoFailed, p.name.notFound()
			summary.Failed++
		case err != nil:
			logRequestError(r, err, "batch photo update failed")
			item.Status, item.Message = photoError, msgInternal
			summary.Errors++
		case result.Modified == 0:
			item.Status, item.Message = photoSkipped, "link_foto sin cambios"
			summary.Skipped++
		default:
			item.Status, item.Message = photoSuccess, "link_foto actualizado"
			summary.Success++
		}
		summary.Results = append(summary.Results, item)
	}

	switch {
	case summary.Failed+summary.Errors == summary.Total:
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "No se pudo actualizar ningún link_foto",
			Data:    summary,
		})
	case summary.Success == 0:
		writeOK(w, http.StatusOK, "Ningún link_foto modificado", summary)
	default:
		writeOK(w, http.StatusOK, fmt.Sprintf("%d de %d link_foto actualizados", summary.Success, summary.Total), summary)
	}
}
