package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/robotstore/robot-store/backend/go-services/internal/product"
)

// MongoRepo implements Repository on the "robots" collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Distinct(ctx context.Context, field string) ([]string, error) {
	values, err := m.col.Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		// distinct also reports numbers, nulls and sub-documents
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

func filterDoc(f product.Filter) bson.M {
	query := bson.M{}
	if f.Categories != nil {
		query[product.FieldCategory] = bson.M{"$in": f.Categories}
	}
	if f.Characters != nil {
		query[product.FieldCharacter] = bson.M{"$in": f.Characters}
	}
	return query
}

func (m *MongoRepo) Find(ctx context.Context, f product.Filter) ([]product.Product, error) {
	cur, err := m.col.Find(ctx, filterDoc(f))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)
	out := []product.Product{}
	for cur.Next(ctx) {
		var p product.Product
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Get(ctx context.Context, id primitive.ObjectID) (product.Product, error) {
	var p product.Product
	err := m.col.FindOne(ctx, bson.M{product.FieldID: id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id.Hex(), err)
	}
	return p, nil
}

func (m *MongoRepo) Create(ctx context.Context, p product.Product) (primitive.ObjectID, error) {
	res, err := m.col.InsertOne(ctx, bson.M(p))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert product: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: got %T", ErrUnexpectedID, res.InsertedID)
	}
	return id, nil
}
