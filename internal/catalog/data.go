package catalog

import "github.com/jvboschetti/acai-storefront/pkg/enums"

var defaultProducts = []Product{
	{
		ID:          "pinheirinho",
		Name:        "Pinheirinho Açaí 500ml",
		Description: "Açaí, leite condensado e leite em pó",
		PriceCents:  2290,
		Image:       "https://k6hrqrxuu8obbfwn.public.blob.vercel-storage.com/temp/0c5936fa-1127-4f91-8f85-8a7dfcff54c2.png",
		Category:    enums.ProductCategoryAcai,
	},
	{
		ID:          "curitiba",
		Name:        "Curitiba Açaí 500ml",
		Description: "Açaí, Nutella, paçoca, leite condensado e leite em pó",
		PriceCents:  3390,
		Image:       "https://k6hrqrxuu8obbfwn.public.blob.vercel-storage.com/temp/0abd519b-a0cd-41f5-b289-945a58ff02fd.png",
		Category:    enums.ProductCategoryAcai,
	},
	{
		ID:          "parana",
		Name:        "Paraná Açaí 500ml",
		Description: "Açaí, morango, banana, Nutella e paçoca",
		PriceCents:  3490,
		Image:       "https://k6hrqrxuu8obbfwn.public.blob.vercel-storage.com/temp/0abd519b-a0cd-41f5-b289-945a58ff02fd.png",
		Category:    enums.ProductCategoryAcai,
	},
	{
		ID:          "coca",
		Name:        "Coca Cola Lata 350ml",
		Description: "Refrigerante gelado",
		PriceCents:  600,
		Image:       "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=400&h=300&fit=crop",
		Category:    enums.ProductCategoryDrink,
	},
	{
		ID:          "coca-zero",
		Name:        "Coca Cola Zero Lata 350ml",
		Description: "Refrigerante zero açúcar gelado",
		PriceCents:  600,
		Image:       "https://images.unsplash.com/photo-1629203851122-3726ecdf080e?w=400&h=300&fit=crop",
		Category:    enums.ProductCategoryDrink,
	},
}

var defaultAdditionals = []Additional{
	{ID: "morango", Name: "Morango", PriceCents: 300},
	{ID: "banana", Name: "Banana", PriceCents: 200},
	{ID: "nutella", Name: "Nutella", PriceCents: 500},
	{ID: "pacoca", Name: "Paçoca", PriceCents: 300},
	{ID: "leite-condensado", Name: "Leite Condensado", PriceCents: 250},
	{ID: "leite-po", Name: "Leite em Pó", PriceCents: 200},
	{ID: "granola", Name: "Granola", PriceCents: 250},
	{ID: "chocolate", Name: "Chocolate Granulado", PriceCents: 200},
}
