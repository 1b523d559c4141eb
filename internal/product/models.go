package product

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names with meaning to the catalog. Everything else in a product is
// opaque and stored as given.
const (
	FieldID        = "_id"
	FieldCategory  = "category"
	FieldCharacter = "character"
)

// Product is a schemaless robot document from the "robots" collection.
// The database assigns _id as an ObjectID, which serializes to JSON as hex.
type Product bson.M

// ID returns the document identifier and whether it is an ObjectID.
func (p Product) ID() (primitive.ObjectID, bool) {
	id, ok := p[FieldID].(primitive.ObjectID)
	return id, ok
}

// Clone returns a shallow copy so callers can't mutate stored maps.
func (p Product) Clone() Product {
	out := make(Product, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Filter restricts a product listing. A nil slice means "no restriction";
// a non-nil slice restricts the field to its members.
type Filter struct {
	Categories []string
	Characters []string
}

// StringValues returns the string values a field holds: the value itself
// when it is a string, or its string elements when it is an array. This is
// the same view MongoDB's distinct and $in take of a field.
func StringValues(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case primitive.A:
		return stringsOf(t)
	case []any:
		return stringsOf(t)
	case []string:
		return t
	}
	return nil
}

func stringsOf(in []any) []string {
	var out []string
	for _, e := range in {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
