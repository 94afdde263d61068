package controllers

import (
	"net/http"

	"github.com/jvboschetti/acai-storefront/api/responses"
	"github.com/jvboschetti/acai-storefront/internal/catalog"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
)

// Catalog returns the storefront listing grouped by section.
func Catalog(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"acais":       cat.ProductsByCategory(enums.ProductCategoryAcai),
			"drinks":      cat.ProductsByCategory(enums.ProductCategoryDrink),
			"additionals": cat.Additionals(),
		})
	}
}
