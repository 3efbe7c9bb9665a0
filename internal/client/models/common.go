package models

import z "github.com/Oudwins/zog"

// Status is shared by users, products and tables.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeleted  Status = "deleted"
)

const msgRequired = "Dieses Feld ist erforderlich."

var StatusSchema = z.StringLike[Status]().Required(z.Message(msgRequired)).OneOf(
	[]Status{StatusActive, StatusInactive, StatusDeleted},
	z.Message("Ungültiger Status."),
)

// idSchema builds the "positive integer id" schema used for every numeric id.
func idSchema(msg string) *z.NumberSchema[int] {
	return z.Int().Required(z.Message(msg)).GTE(1, z.Message(msg))
}

var createdAtSchema = z.Time().Required(z.Message("Ungültiges Datumsformat."))
