package catalog

// SeedProducts is the demo inventory the catalog starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Red Bull RB19 Replica",
			Driver:      "Max Verstappen",
			Team:        "Red Bull Racing",
			Category:    CategoryCar,
			Price:       89.99,
			Picture:     "https://resources.claroshop.com/medios-plazavip/fotos/productos_sears1/original/4091992.jpg",
			Description: "Official Red Bull Racing RB19 replica model car",
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Mercedes AMG F1 Team Cap",
			Driver:      "Kimi Antonelli",
			Team:        "Mercedes AMG F1",
			Category:    CategoryMerchandise,
			Price:       29.99,
			Picture:     "https://shop-int.mercedesamgf1.com/cdn/shop/files/JW6268_1_HARDWARE_Photography_FrontCenterView_grey150125.jpg?v=1749101408",
			Description: "Official Mercedes AMG F1 team cap",
			InStock:     true,
			Featured:    false,
		},
		{
			ID:          "3",
			Name:        "Ferrari SF-23 Die-Cast Model",
			Driver:      "Charles Leclerc",
			Team:        "Scuderia Ferrari",
			Category:    CategoryCollectibles,
			Price:       149.99,
			Picture:     "https://cdn11.bigcommerce.com/s-rejby4tfjq/images/stencil/1000x667/products/15131/77582/18-26808-16-MAI-Bburago-Ferrari-SF-23-No16-Charles-Leclerc-F1-2023-1__69265.1729296412.jpg?c=1",
			Description: "Limited edition Ferrari SF-23 die-cast model with Leclerc livery",
			InStock:     false,
			Featured:    true,
		},
		{
			ID:          "4",
			Name:        "McLaren Racing Helmet",
			Driver:      "Lando Norris",
			Team:        "McLaren F1 Team",
			Category:    CategoryRacingGear,
			Price:       299.99,
			Picture:     "https://images.footballfanatics.com/mclaren-f1-team/mclaren-f1-team-lando-norris-2024-1:5-spark-model-helmet_ss5_p-201710614+pv-2+u-wiaaj9oafikhzdezfbx5+v-l61r3iymn1cklkazxm1n.jpg?_hv=2&w=900",
			Description: "Professional grade racing helmet with McLaren F1 Team design",
			InStock:     true,
			Featured:    false,
		},
		{
			ID:          "5",
			Name:        "Alpine F1 Team Jacket",
			Driver:      "Pierre Gasly",
			Team:        "Alpine F1 Team",
			Category:    CategoryMerchandise,
			Price:       79.99,
			Picture:     "https://images.footballfanatics.com/alpine/alpine-f1-team-2024-rain-jacket_ss5_p-200837889+u-mxazpxczp49uvhjqycvu+v-xobs7q3v7hhgkco9yff7.jpg?_hv=2",
			Description: "Official Alpine F1 Team jacket worn by the pit crew",
			InStock:     true,
			Featured:    false,
		},
	}
}
