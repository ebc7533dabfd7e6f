package handlers

import (
	"net/http"

	response "hvacworks/internal/adapter/http/dto/response"
	"hvacworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the embedded supplier price list. The catalog is
// immutable, so these endpoints are pure reads over in-memory tables.

type CatalogHandler struct {
	catalog     *entities.Catalog
	multipliers entities.MultiplierTable
}

func NewCatalogHandler(catalog *entities.Catalog, multipliers entities.MultiplierTable) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, multipliers: multipliers}
}

// Get returns category keys and the multiplier table.
func (h *CatalogHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog, h.multipliers))
}

// Search matches item names by case-insensitive substring, optionally
// scoped to one category. An empty query lists everything.
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	c.JSON(http.StatusOK, response.FromCatalogItems(h.catalog.Search(query, category)))
}
