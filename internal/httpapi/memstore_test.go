package httpapi

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cartera-go/internal/model"
	"cartera-go/internal/repositories"
)

// memStore keeps documents as bson.M so reads go through the same
// encoding the real store uses.
type memStore[T any] struct {
	mu     sync.Mutex
	docs   map[primitive.ObjectID]bson.M
	order  []primitive.ObjectID
	unique []string
	err    error
}

func newMemStore[T any](unique ...string) *memStore[T] {
	return &memStore[T]{docs: map[primitive.ObjectID]bson.M{}, unique: unique}
}

func toM(v any) bson.M {
	raw, err := bson.Marshal(v)
	if err != nil {
		panic(err)
	}
	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func fromM[T any](m bson.M) T {
	var out T
	raw, err := bson.Marshal(m)
	if err != nil {
		panic(err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func (m *memStore[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []T{}
	for _, id := range m.order {
		out = append(out, fromM[T](m.docs[id]))
	}
	return out, nil
}

func (m *memStore[T]) Get(_ context.Context, id primitive.ObjectID) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if m.err != nil {
		return zero, m.err
	}
	doc, ok := m.docs[id]
	if !ok {
		return zero, repositories.ErrNotFound
	}
	return fromM[T](doc), nil
}

func (m *memStore[T]) Create(_ context.Context, doc *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if p, ok := any(doc).(model.Preparer); ok {
		p.Prepare()
	}
	fields := toM(doc)
	if m.collides(fields, primitive.NilObjectID) {
		return repositories.ErrDuplicate
	}
	id := primitive.NewObjectID()
	fields["_id"] = id
	m.docs[id] = fields
	m.order = append(m.order, id)
	if ident, ok := any(doc).(model.Identifiable); ok {
		ident.SetID(id)
	}
	return nil
}

func (m *memStore[T]) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (repositories.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return repositories.UpdateResult{}, m.err
	}
	doc, ok := m.docs[id]
	if !ok {
		return repositories.UpdateResult{}, repositories.ErrNotFound
	}
	if m.collides(fields, id) {
		return repositories.UpdateResult{}, repositories.ErrDuplicate
	}
	result := repositories.UpdateResult{Matched: 1}
	for key, val := range fields {
		if current, ok := doc[key]; !ok || !reflect.DeepEqual(current, val) {
			result.Modified = 1
		}
		doc[key] = val
	}
	return result, nil
}

func (m *memStore[T]) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.docs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.docs, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore[T]) collides(fields bson.M, self primitive.ObjectID) bool {
	for _, name := range m.unique {
		val, ok := fields[name]
		if !ok || val == nil {
			continue
		}
		for id, doc := range m.docs {
			if id != self && reflect.DeepEqual(doc[name], val) {
				return true
			}
		}
	}
	return false
}

type memPeople struct {
	*memStore[model.Persona]
}

func newMemPeople() *memPeople {
	return &memPeople{memStore: newMemStore[model.Persona]()}
}

func (m *memPeople) UpdatePhoto(_ context.Context, q model.PhotoQuery, link *string) (repositories.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return repositories.UpdateResult{}, m.err
	}
	for _, id := range m.order {
		doc := m.docs[id]
		if doc["nombre"] != q.Nombre || doc["a_paterno"] != q.APaterno {
			continue
		}
		if q.HasAMaterno {
			var want any
			if q.AMaterno != nil {
				want = *q.AMaterno
			}
			if doc["a_materno"] != want {
				continue
			}
		}
		var val any
		if link != nil {
			val = *link
		}
		if doc["link_foto"] == val {
			return repositories.UpdateResult{Matched: 1}, nil
		}
		doc["link_foto"] = val
		return repositories.UpdateResult{Matched: 1, Modified: 1}, nil
	}
	return repositories.UpdateResult{}, repositories.ErrNotFound
}

type memSheet struct {
	mu   sync.Mutex
	rows []map[string]any
	err  error
}

func (m *memSheet) Rows(context.Context) ([]map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]any{}, m.rows...), m.err
}

func (m *memSheet) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), m.err
}

func (m *memSheet) Insert(_ context.Context, rows []map[string]any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.rows = append(m.rows, rows...)
	return len(rows), nil
}

func (m *memSheet) Clear(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	n := int64(len(m.rows))
	m.rows = nil
	return n, nil
}

func (m *memSheet) Replace(ctx context.Context, rows []map[string]any) (int64, int, error) {
	deleted, err := m.Clear(ctx)
	if err != nil {
		return 0, 0, err
	}
	inserted, err := m.Insert(ctx, rows)
	return deleted, inserted, err
}
