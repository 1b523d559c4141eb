package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robotstore/robot-store/backend/go-services/internal/product"
	"github.com/robotstore/robot-store/backend/go-services/internal/product/service"
	"github.com/robotstore/robot-store/backend/go-services/pkg/logger"
)

// Envelope is the body of every catalog response. Data is omitted only on
// successful creation.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const MsgUnexpected = "Unexpected error"

// errorResponses maps request-level failures to their client response.
// Errors not listed here are answered with 500 "Unexpected error".
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrUnknownCategory, http.StatusBadRequest, "Unknown category"},
	{service.ErrUnknownCharacter, http.StatusBadRequest, "Unknown character"},
	{service.ErrInvalidProductData, http.StatusBadRequest, "Invalid product data"},
	{service.ErrInvalidID, http.StatusBadRequest, "Invalid product ID"},
	{service.ErrNotFound, http.StatusNotFound, "Unknown product ID"},
}

// respondError writes the failure envelope for err. Internal error text is
// logged, never returned.
func respondError(c *gin.Context, err error) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			c.JSON(r.status, Envelope{Message: r.message, Data: []any{}})
			return
		}
	}
	logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, Envelope{Message: MsgUnexpected, Data: []any{}})
}

// RegisterProductRoutes registers the catalog endpoints.
func RegisterProductRoutes(r gin.IRoutes, svc *service.Service) {
	h := &productHandler{svc: svc}
	r.GET("/products", h.list)
	r.GET("/products/:id", h.get)
	r.POST("/products", h.create)
	r.GET("/categories", h.categories)
	r.GET("/characters", h.characters)
}

type productHandler struct {
	svc *service.Service
}

func (h *productHandler) list(c *gin.Context) {
	var q service.ListQuery
	if v, ok := c.GetQuery("categories"); ok {
		q.Categories = &v
	}
	if v, ok := c.GetQuery("characters"); ok {
		q.Characters = &v
	}
	products, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Message: "Successfully found products.", Data: products})
}

func (h *productHandler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Message: "Successfully found product.", Data: p})
}

func (h *productHandler) create(c *gin.Context) {
	var body product.Product
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, errors.Join(service.ErrInvalidProductData, err))
		return
	}
	id, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/products/"+id.Hex())
	c.JSON(http.StatusCreated, Envelope{Message: "Successfully created product."})
}

func (h *productHandler) categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Message: "Successfully found categories.", Data: cats})
}

func (h *productHandler) characters(c *gin.Context) {
	chars, err := h.svc.Characters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{Message: "Successfully found characters.", Data: chars})
}
