package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/robotstore/robot-store/backend/go-services/internal/product"
	"github.com/robotstore/robot-store/backend/go-services/internal/product/repository"
)

// Request-level failures the handler layer translates into client responses.
// Any other error is unexpected.
var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrInvalidProductData = errors.New("invalid product data")
	ErrInvalidID          = errors.New("invalid product id")
	ErrNotFound           = errors.New("product not found")
)

// ListQuery carries the raw comma-separated filter parameters. A nil pointer
// means the parameter was absent.
type ListQuery struct {
	Categories *string
	Characters *string
}

// Service is the product catalog used by the handler layer.
type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() *Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by the given products collection.
func NewMongoService(col *mongo.Collection) *Service {
	return New(repository.NewMongoRepo(col))
}

// Categories returns the category facet.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Distinct(ctx, product.FieldCategory)
}

// Characters returns the character facet.
func (s *Service) Characters(ctx context.Context) ([]string, error) {
	return s.repo.Distinct(ctx, product.FieldCharacter)
}

// List validates each filter value against its live facet and returns the
// products matching every given filter.
func (s *Service) List(ctx context.Context, q ListQuery) ([]product.Product, error) {
	var f product.Filter
	if q.Categories != nil {
		values, err := s.validate(ctx, product.FieldCategory, *q.Categories, ErrUnknownCategory)
		if err != nil {
			return nil, err
		}
		f.Categories = values
	}
	if q.Characters != nil {
		values, err := s.validate(ctx, product.FieldCharacter, *q.Characters, ErrUnknownCharacter)
		if err != nil {
			return nil, err
		}
		f.Characters = values
	}
	return s.repo.Find(ctx, f)
}

func (s *Service) validate(ctx context.Context, field, raw string, unknown error) ([]string, error) {
	facet, err := s.repo.Distinct(ctx, field)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(facet))
	for _, v := range facet {
		known[v] = struct{}{}
	}
	values := strings.Split(raw, ",")
	for _, v := range values {
		if _, ok := known[v]; !ok {
			return nil, fmt.Errorf("%w: %q", unknown, v)
		}
	}
	return values, nil
}

// Get looks up one product by its hex identifier.
func (s *Service) Get(ctx context.Context, rawID string) (product.Product, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, rawID)
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create stores p as a new product and returns its identifier. Identifiers
// are assigned by the database, so p must not carry one.
func (s *Service) Create(ctx context.Context, p product.Product) (primitive.ObjectID, error) {
	if p == nil {
		return primitive.NilObjectID, ErrInvalidProductData
	}
	if _, ok := p[product.FieldID]; ok {
		return primitive.NilObjectID, fmt.Errorf("%w: _id is assigned by the store", ErrInvalidProductData)
	}
	return s.repo.Create(ctx, p)
}
