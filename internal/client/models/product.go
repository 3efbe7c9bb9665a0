package models

import (
	"time"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/validation"
)

type Category string

const (
	CategoryFood     Category = "food"
	CategoryBeverage Category = "beverage"
	CategoryOther    Category = "other"
)

var (
	ProductIDSchema = idSchema("Ungültige Produkt-ID.")

	ProductNameSchema = z.String().Trim().Required(z.Message(msgRequired)).
				Min(3, z.Message("Das sieht nicht nach einem echten Namen aus.")).
				Max(50, z.Message("Der Name ist zu lang."))

	DescriptionSchema = z.String().Trim().Max(250, z.Message("Die Beschreibung ist zu lang."))

	// Zero is a valid price, so the field is not marked required.
	NetPriceCentsSchema = z.Int().GTE(0, z.Message("Der Nettopreis muss positiv sein."))

	CategorySchema = z.StringLike[Category]().Required(z.Message(msgRequired)).OneOf(
		[]Category{CategoryFood, CategoryBeverage, CategoryOther},
		z.Message("Unbekannte Kategorie."),
	)
)

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	NetPriceCents int       `json:"netPriceCents"`
	Category      Category  `json:"category"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

var ProductSchema = z.Struct(z.Shape{
	"ID":            ProductIDSchema,
	"Name":          ProductNameSchema,
	"Description":   DescriptionSchema,
	"NetPriceCents": NetPriceCentsSchema,
	"Category":      CategorySchema,
	"Status":        StatusSchema,
	"CreatedAt":     createdAtSchema,
})

func (p Product) Validate() error {
	return validation.Struct("product", ProductSchema, &p)
}

// ProductPublic is what service staff see on the menu.
type ProductPublic struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	NetPriceCents int      `json:"netPriceCents"`
	Category      Category `json:"category"`
}

var ProductPublicSchema = z.Struct(z.Shape{
	"ID":            ProductIDSchema,
	"Name":          ProductNameSchema,
	"Description":   DescriptionSchema,
	"NetPriceCents": NetPriceCentsSchema,
	"Category":      CategorySchema,
})

func (p ProductPublic) Validate() error {
	return validation.Struct("product", ProductPublicSchema, &p)
}
