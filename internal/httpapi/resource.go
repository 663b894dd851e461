package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cartera-go/internal/model"
	"cartera-go/internal/repositories"
)

// resource serves CRUD for documents of type T, patched through P.
type resource[T any, P any] struct {
	name    noun
	store   repositories.Store[T]
	notNull map[string]bool
}

func newResource[T any, P any](name noun, store repositories.Store[T]) *resource[T, P] {
	return &resource[T, P]{name: name, store: store, notNull: requiredFields[T]()}
}

func (res *resource[T, P]) routes(r chi.Router) {
	r.Get("/", res.list)
	r.Post("/", res.create)
	r.Get("/{id}", res.get)
	r.Put("/{id}", res.update)
	r.Delete("/{id}", res.delete)
}

func (res *resource[T, P]) list(w http.ResponseWriter, r *http.Request) {
	docs, err := res.store.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", docs)
}

func (res *resource[T, P]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := res.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, res.name, err)
		return
	}
	writeOK(w, http.StatusOK, "", doc)
}

func (res *resource[T, P]) create(w http.ResponseWriter, r *http.Request) {
	var doc T
	if err := decodeJSON(r, &doc); err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if ident, ok := any(&doc).(model.Identifiable); ok {
		ident.SetID(primitive.NilObjectID)
	}
	if err := model.Validate(&doc); err != nil {
		writeFail(w, http.StatusBadRequest, model.ValidationMessage(err))
		return
	}

	if err := res.store.Create(r.Context(), &doc); err != nil {
		writeStoreError(w, r, res.name, err)
		return
	}
	writeOK(w, http.StatusCreated, res.name.created(), doc)
}

func (res *resource[T, P]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if len(present) == 0 {
		writeFail(w, http.StatusBadRequest, msgEmptyUpdate)
		return
	}

	var patch P
	if err := json.Unmarshal(body, &patch); err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := model.Validate(&patch); err != nil {
		writeFail(w, http.StatusBadRequest, model.ValidationMessage(err))
		return
	}

	fields, err := patchFields(&patch, present)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if len(fields) == 0 {
		writeFail(w, http.StatusBadRequest, msgEmptyUpdate)
		return
	}
	for key, val := range fields {
		if val == nil && res.notNull[key] {
			writeFail(w, http.StatusBadRequest, key+": required")
			return
		}
	}

	result, err := res.store.Update(r.Context(), id, fields)
	if err != nil {
		writeStoreError(w, r, res.name, err)
		return
	}
	if result.Modified == 0 {
		writeOK(w, http.StatusOK, res.name.unchanged(), nil)
		return
	}

	doc, err := res.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, res.name, err)
		return
	}
	writeOK(w, http.StatusOK, res.name.updated(), doc)
}

func (res *resource[T, P]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := res.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, res.name, err)
		return
	}
	writeOK(w, http.StatusOK, res.name.deleted(), nil)
}

// patchFields encodes patch and keeps only the keys the client sent, so an
// omitted key is left alone while an explicit null is written.
func patchFields(patch any, present map[string]json.RawMessage) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, errors.Wrap(err, "marshal patch")
	}
	all := bson.M{}
	if err := bson.Unmarshal(raw, &all); err != nil {
		return nil, errors.Wrap(err, "unmarshal patch")
	}

	fields := bson.M{}
	for key := range present {
		if val, ok := all[key]; ok {
			fields[key] = val
		}
	}
	return fields, nil
}

// requiredFields lists the json names of T that may not be set to null:
// plain values and pointers tagged required.
func requiredFields[T any]() map[string]bool {
	out := map[string]bool{}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" || name == "_id" {
			continue
		}
		rules := strings.Split(field.Tag.Get("validate"), ",")
		if field.Type.Kind() != reflect.Ptr || slices.Contains(rules, "required") {
			out[name] = true
		}
	}
	return out
}
