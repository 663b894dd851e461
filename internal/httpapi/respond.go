package httpapi

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cartera-go/internal/repositories"
)

const (
	msgInvalidID   = "ID inválido"
	msgInvalidBody = "Cuerpo de la petición inválido"
	msgEmptyUpdate = "No se enviaron campos para actualizar"
	msgInternal    = "Error interno del servidor"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeOK(w http.ResponseWriter, status int, msg string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: msg, Data: data})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Message: msg})
}

// writeStoreError renders repository failures. Anything unexpected is
// logged and hidden behind a 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, n noun, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		writeFail(w, http.StatusNotFound, n.notFound())
	case errors.Is(err, repositories.ErrDuplicate):
		writeFail(w, http.StatusConflict, n.duplicate())
	default:
		writeInternalError(w, r, err)
	}
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logRequestError(r, err, "request failed")
	writeFail(w, http.StatusInternalServerError, msgInternal)
}

func logRequestError(r *http.Request, err error, msg string) {
	grip.Error(message.WrapError(err, message.Fields{
		"message":    msg,
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": middleware.GetReqID(r.Context()),
	}))
}

// pathID reads the {id} URL parameter and writes a 400 when it is not a
// 24 digit hex object id.
func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	if !objectIDPattern.MatchString(raw) {
		writeFail(w, http.StatusBadRequest, msgInvalidID)
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return errors.Wrap(json.NewDecoder(r.Body).Decode(dst), "decode body")
}
