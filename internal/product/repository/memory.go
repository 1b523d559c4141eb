package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robotstore/robot-store/backend/go-services/internal/product"
)

// MemoryRepo is an in-memory repository used when no MongoDB is configured
// and by unit tests. Products keep insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]product.Product
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]product.Product)}
}

func (m *MemoryRepo) Distinct(_ context.Context, field string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]struct{}{}
	out := []string{}
	for _, id := range m.order {
		for _, v := range product.StringValues(m.store[id][field]) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryRepo) Find(_ context.Context, f product.Filter) ([]product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []product.Product{}
	for _, id := range m.order {
		p := m.store[id]
		if f.Categories != nil && !memberOf(p[product.FieldCategory], f.Categories) {
			continue
		}
		if f.Characters != nil && !memberOf(p[product.FieldCharacter], f.Characters) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out, nil
}

// memberOf mirrors {field: {$in: set}}.
func memberOf(v any, set []string) bool {
	for _, s := range product.StringValues(v) {
		for _, want := range set {
			if s == want {
				return true
			}
		}
	}
	return false
}

func (m *MemoryRepo) Get(_ context.Context, id primitive.ObjectID) (product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		return p.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) Create(_ context.Context, p product.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := p.Clone()
	id := primitive.NewObjectID()
	stored[product.FieldID] = id
	m.store[id] = stored
	m.order = append(m.order, id)
	return id, nil
}
