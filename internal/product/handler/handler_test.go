package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robotstore/robot-store/backend/go-services/internal/product"
	"github.com/robotstore/robot-store/backend/go-services/internal/product/service"
)

type response struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newEngine(svc *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterProductRoutes(g, svc)
	return g
}

func do(t *testing.T, g *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	g.ServeHTTP(w, req)
	var r response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r), w.Body.String())
	return w, r
}

func TestProductHandler_CreateThenGet(t *testing.T) {
	g := newEngine(service.NewMemoryService())

	w, r := do(t, g, http.MethodPost, "/products", `{"name":"Buzz","category":"drone","character":"R2","price":12.5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Successfully created product.", r.Message)
	assert.Nil(t, r.Data, "create response carries no data")
	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/products/"), loc)

	w, r = do(t, g, http.MethodGet, loc, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully found product.", r.Message)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(r.Data, &doc))
	assert.Equal(t, strings.TrimPrefix(loc, "/products/"), doc["_id"])
	assert.Equal(t, "Buzz", doc["name"])
	assert.Equal(t, "drone", doc["category"])
	assert.Equal(t, 12.5, doc["price"])
}

func TestProductHandler_CreateRejectsBadBodies(t *testing.T) {
	g := newEngine(service.NewMemoryService())
	for _, body := range []string{`[1,2]`, `"robot"`, `{"name":`, `null`, `{"_id":"x"}`} {
		w, r := do(t, g, http.MethodPost, "/products", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid product data", r.Message, body)
		assert.JSONEq(t, `[]`, string(r.Data), body)
	}

	w, r := do(t, g, http.MethodPost, "/products", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product data", r.Message)
}

func TestProductHandler_ListAndFilters(t *testing.T) {
	svc := service.NewMemoryService()
	ctx := context.Background()
	_, err := svc.Create(ctx, product.Product{"name": "first", "category": "drone", "character": "R2"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, product.Product{"name": "second", "category": "android", "character": "C3"})
	require.NoError(t, err)
	g := newEngine(svc)

	names := func(raw json.RawMessage) []string {
		var docs []map[string]any
		require.NoError(t, json.Unmarshal(raw, &docs))
		out := []string{}
		for _, d := range docs {
			out = append(out, d["name"].(string))
		}
		return out
	}

	w, r := do(t, g, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully found products.", r.Message)
	assert.Equal(t, []string{"first", "second"}, names(r.Data))

	w, r = do(t, g, http.MethodGet, "/products?categories=drone", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"first"}, names(r.Data))

	w, r = do(t, g, http.MethodGet, "/products?categories=drone,android&characters=C3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"second"}, names(r.Data))

	w, r = do(t, g, http.MethodGet, "/products?categories=drone&characters=C3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(r.Data))

	w, r = do(t, g, http.MethodGet, "/products?categories=hover-tank", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown category", r.Message)
	assert.JSONEq(t, `[]`, string(r.Data))

	w, r = do(t, g, http.MethodGet, "/products?characters=HAL", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown character", r.Message)
	assert.JSONEq(t, `[]`, string(r.Data))
}

func TestProductHandler_Facets(t *testing.T) {
	svc := service.NewMemoryService()
	g := newEngine(svc)

	w, r := do(t, g, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(r.Data))

	ctx := context.Background()
	for _, p := range []product.Product{
		{"category": "drone", "character": "R2"},
		{"category": "android", "character": "C3"},
		{"category": "drone", "character": "C3"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	w, r = do(t, g, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully found categories.", r.Message)
	var cats []string
	require.NoError(t, json.Unmarshal(r.Data, &cats))
	assert.ElementsMatch(t, []string{"drone", "android"}, cats)

	w, r = do(t, g, http.MethodGet, "/characters", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully found characters.", r.Message)
	var chars []string
	require.NoError(t, json.Unmarshal(r.Data, &chars))
	assert.ElementsMatch(t, []string{"R2", "C3"}, chars)
}

func TestProductHandler_GetErrors(t *testing.T) {
	g := newEngine(service.NewMemoryService())

	w, r := do(t, g, http.MethodGet, "/products/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product ID", r.Message)

	w, r = do(t, g, http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Unknown product ID", r.Message)
	assert.JSONEq(t, `[]`, string(r.Data))
}

// failingRepo simulates an unreachable database.
type failingRepo struct{}

var errDown = errors.New("server selection timeout: mongo://secret-host")

func (failingRepo) Distinct(context.Context, string) ([]string, error) { return nil, errDown }
func (failingRepo) Find(context.Context, product.Filter) ([]product.Product, error) {
	return nil, errDown
}
func (failingRepo) Get(context.Context, primitive.ObjectID) (product.Product, error) {
	return nil, errDown
}
func (failingRepo) Create(context.Context, product.Product) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errDown
}

func TestProductHandler_UnexpectedErrorsDoNotLeak(t *testing.T) {
	g := newEngine(service.New(failingRepo{}))
	cases := []struct{ method, target, body string }{
		{http.MethodGet, "/products", ""},
		{http.MethodGet, "/products?categories=drone", ""},
		{http.MethodGet, "/products/" + primitive.NewObjectID().Hex(), ""},
		{http.MethodPost, "/products", `{"name":"x"}`},
		{http.MethodGet, "/categories", ""},
		{http.MethodGet, "/characters", ""},
	}
	for _, tc := range cases {
		w, r := do(t, g, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.target)
		assert.Equal(t, MsgUnexpected, r.Message, tc.target)
		assert.JSONEq(t, `[]`, string(r.Data), tc.target)
		assert.NotContains(t, w.Body.String(), "secret-host")
	}
}
