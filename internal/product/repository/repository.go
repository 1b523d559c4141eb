package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robotstore/robot-store/backend/go-services/internal/product"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrUnexpectedID means the store assigned an identifier that is not an ObjectID.
	ErrUnexpectedID = errors.New("inserted id is not an ObjectID")
)

// Repository is the storage contract the product service depends on.
type Repository interface {
	// Distinct returns the distinct string values of field across all products.
	Distinct(ctx context.Context, field string) ([]string, error)
	Find(ctx context.Context, f product.Filter) ([]product.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (product.Product, error)
	// Create stores p and returns the identifier assigned to it.
	Create(ctx context.Context, p product.Product) (primitive.ObjectID, error)
}
