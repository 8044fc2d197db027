package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"gorm.io/datatypes"
)

// sampleNamespace scopes the ids of the sample catalog
var sampleNamespace = uuid.MustParse("6f1c2a8e-4b7d-5e90-a3c1-2d4e6f8a0b1c")

// SampleProductID is the fixed id of a sample product. Seeding twice targets
// the same rows.
func SampleProductID(name string) string {
	return uuid.NewSHA1(sampleNamespace, []byte(name)).String()
}

func colorCode(code string) *string {
	return &code
}

// SampleCatalog returns the demonstration catalog loaded by SeedCatalog
func SampleCatalog() []models.Product {
	c := func(name, code string) models.ProductColor {
		return models.ProductColor{Name: name, Code: colorCode(code)}
	}
	catalog := []models.Product{
		{
			Name:             "Persiana Enrollable Blackout",
			Description:      "Bloqueo total de luz, ideal para recámaras. Tela de alta densidad con respaldo térmico.",
			DistributorPrice: 450,
			ClientPrice:      585,
			Colors: datatypes.JSONSlice[models.ProductColor]{
				c("Blanco", "#FFFFFF"), c("Beige", "#F5F5DC"), c("Gris", "#808080"),
				c("Negro", "#000000"), c("Azul Marino", "#000080"),
			},
		},
		{
			Name:             "Persiana Enrollable Traslúcida",
			Description:      "Permite el paso de luz difusa, perfecta para salas y comedores. Disponible en múltiples colores.",
			DistributorPrice: 350,
			ClientPrice:      455,
			Colors: datatypes.JSONSlice[models.ProductColor]{
				c("Blanco", "#FFFFFF"), c("Crema", "#FFFDD0"), c("Arena", "#C2B280"), c("Gris Claro", "#D3D3D3"),
			},
		},
		{
			Name:             "Persiana Screen 5%",
			Description:      "Visibilidad hacia el exterior con protección solar. Reduce el calor y rayos UV.",
			DistributorPrice: 520,
			ClientPrice:      676,
			Colors: datatypes.JSONSlice[models.ProductColor]{
				c("Blanco/Gris", "#E8E8E8"), c("Gris/Negro", "#4A4A4A"), c("Beige/Bronce", "#C4A484"), c("Charcoal", "#36454F"),
			},
		},
		{
			Name:             "Persiana Día/Noche",
			Description:      "Sistema dual con franjas alternas para control preciso de luz y privacidad.",
			DistributorPrice: 480,
			ClientPrice:      624,
			Colors: datatypes.JSONSlice[models.ProductColor]{
				c("Blanco", "#FFFFFF"), c("Marfil", "#FFFFF0"), c("Gris", "#808080"), c("Chocolate", "#7B3F00"),
			},
		},
		{
			Name:             "Persiana Decorativa Premium",
			Description:      "Diseños exclusivos con texturas y patrones. Acabado de lujo para espacios elegantes.",
			DistributorPrice: 400,
			ClientPrice:      520,
			Colors: datatypes.JSONSlice[models.ProductColor]{
				c("Lino Natural", "#FAF0E6"), c("Textura Gris", "#A9A9A9"), c("Damasco", "#FFCBA4"), c("Perla", "#EAE0C8"),
			},
		},
	}
	for i := range catalog {
		catalog[i].ID = SampleProductID(catalog[i].Name)
	}
	return catalog
}

// SeedResult reports what SeedCatalog did
type SeedResult struct {
	Created  int
	Existing int64
}

// Message is the human readable outcome shown to the caller
func (r SeedResult) Message() string {
	if r.Created == 0 {
		return fmt.Sprintf("Ya existen %d productos en la base de datos", r.Existing)
	}
	return fmt.Sprintf("Se crearon %d productos de ejemplo con colores", r.Created)
}

// SeedCatalog loads the sample catalog into an empty store. A store that
// already holds products is left alone. Sample rows have fixed ids, so a
// concurrent seed that also saw an empty store inserts nothing.
func SeedCatalog(ctx context.Context, products ProductRepository) (SeedResult, error) {
	count, err := products.Count(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if count > 0 {
		return SeedResult{Existing: count}, nil
	}

	created, err := products.CreateMissing(ctx, SampleCatalog())
	if err != nil {
		return SeedResult{}, err
	}
	if created > 0 {
		return SeedResult{Created: int(created)}, nil
	}

	count, err = products.Count(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	return SeedResult{Existing: count}, nil
}
