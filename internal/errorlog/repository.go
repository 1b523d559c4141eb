package errorlog

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository appends entries. Entries are never updated or deleted.
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
}

// MongoRepository implements Repository using the "errors" collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, e *Entry) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	if res.InsertedID == nil {
		return fmt.Errorf("insert error log: no id returned")
	}
	return nil
}

// MemoryRepository keeps entries in process; used without MongoDB and in tests.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

// Entries returns a copy of everything inserted so far.
func (r *MemoryRepository) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
