package product_controller

import "github.com/houranii/tyreshop/models"

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func toStorefront(tyres []models.Tyre) []models.StorefrontTyreResponse {
	out := make([]models.StorefrontTyreResponse, len(tyres))
	for i, t := range tyres {
		out[i] = models.NewStorefrontTyreResponse(t)
	}
	return out
}
