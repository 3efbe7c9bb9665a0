package models

import (
	"time"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/validation"
)

var (
	TableIDSchema = idSchema("Ungültige Tisch-ID.")

	TableNameSchema = z.String().Trim().Required(z.Message(msgRequired)).
			Min(3, z.Message("Das sieht nicht nach einem echten Namen aus.")).
			Max(30, z.Message("Der Name ist zu lang."))

	TableStatusSchema = z.StringLike[Status]().Required(z.Message(msgRequired)).OneOf(
		[]Status{StatusActive, StatusInactive},
		z.Message("Ungültiger Status."),
	)
)

type Table struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

var TableSchema = z.Struct(z.Shape{
	"ID":        TableIDSchema,
	"Name":      TableNameSchema,
	"Status":    TableStatusSchema,
	"CreatedAt": createdAtSchema,
})

func (t Table) Validate() error {
	return validation.Struct("table", TableSchema, &t)
}

type TablePublic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var TablePublicSchema = z.Struct(z.Shape{
	"ID":   TableIDSchema,
	"Name": TableNameSchema,
})

func (t TablePublic) Validate() error {
	return validation.Struct("table", TablePublicSchema, &t)
}
