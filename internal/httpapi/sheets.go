package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"cartera-go/internal/repositories"
	"cartera-go/internal/services/fundsync"
)

// decodeRows accepts either a single JSON object or an array of objects.
// Client supplied _id values are dropped.
func decodeRows(r *http.Request) ([]map[string]any, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	body = bytes.TrimSpace(body)

	var rows []map[string]any
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, errors.Wrap(err, "decode rows")
		}
	} else {
		var row map[string]any
		if err := json.Unmarshal(body, &row); err != nil {
			return nil, errors.Wrap(err, "decode row")
		}
		rows = []map[string]any{row}
	}

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			return nil, errors.New("row must be an object")
		}
		delete(row, "_id")
		out = append(out, row)
	}
	return out, nil
}

type sheetHandler struct {
	store     repositories.SheetStore
	normalize func(map[string]any) map[string]any
}

func (h *sheetHandler) list(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.Rows(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(rows),
		"data":    rows,
	})
}

func (h *sheetHandler) insert(w http.ResponseWriter, r *http.Request) {
	rows, err := decodeRows(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if len(rows) == 0 {
		writeFail(w, http.StatusBadRequest, "Se requiere al menos una fila")
		return
	}
	if h.normalize != nil {
		for i, row := range rows {
			rows[i] = h.normalize(row)
		}
	}

	inserted, err := h.store.Insert(r.Context(), rows)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"message":    humanize.Comma(int64(inserted)) + " filas insertadas",
		"insertados": inserted,
	})
}

func (h *sheetHandler) clear(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.Clear(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    humanize.Comma(deleted) + " filas eliminadas",
		"eliminados": deleted,
	})
}

type syncHandler struct {
	service *fundsync.Service
}

func (h *syncHandler) sync(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Sync(r.Context())
	var fetchErr *fundsync.FetchError
	switch {
	case errors.Is(err, fundsync.ErrSourceNotConfigured):
		writeFail(w, http.StatusServiceUnavailable, "La sincronización de fondos no está configurada")
		return
	case errors.Is(err, fundsync.ErrSyncInProgress):
		writeFail(w, http.StatusConflict, "Ya hay una sincronización en curso")
		return
	case errors.As(err, &fetchErr):
		logRequestError(r, err, "fund sheet fetch failed")
		writeFail(w, http.StatusBadGateway, "No se pudo obtener la planilla de fondos")
		return
	case err != nil:
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Fondos sincronizados: " + humanize.Comma(int64(res.Inserted)) + " filas",
		"eliminados": res.Deleted,
		"insertados": res.Inserted,
	})
}
