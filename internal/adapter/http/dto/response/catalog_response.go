package response

import "hvacworks/internal/domain/entities"

type CatalogItemResponse struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	LaborHours float64 `json:"labor_hours"`
}

type CatalogCategoryResponse struct {
	Category string                `json:"category"`
	Items    []CatalogItemResponse `json:"items"`
}

type CatalogResponse struct {
	Categories  []CatalogCategoryResponse `json:"categories"`
	Multipliers map[string]float64        `json:"multipliers"`
	Default     float64                   `json:"default_multiplier"`
}

type CatalogSearchResponse struct {
	Items []CatalogItemResponse `json:"items"`
}

func FromCatalogItems(items []entities.CatalogItem) CatalogSearchResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CatalogItemResponse{
			Category:   it.Category,
			Name:       it.Name,
			UnitPrice:  money(it.UnitPrice),
			LaborHours: it.LaborHours.InexactFloat64(),
		})
	}
	return CatalogSearchResponse{Items: out}
}

func FromCatalog(c *entities.Catalog, t entities.MultiplierTable) CatalogResponse {
	multipliers := make(map[string]float64)
	for category, m := range t.Categories() {
		multipliers[category] = m.InexactFloat64()
	}
	categories := make([]CatalogCategoryResponse, 0, len(c.Categories()))
	for _, category := range c.Categories() {
		categories = append(categories, CatalogCategoryResponse{
			Category: category,
			Items:    FromCatalogItems(c.ItemsByCategory(category)).Items,
		})
	}
	return CatalogResponse{
		Categories:  categories,
		Multipliers: multipliers,
		Default:     t.Default().InexactFloat64(),
	}
}
