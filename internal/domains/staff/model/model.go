package model

import (
	"grandresort/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
	FieldActive       = "active"
)

// Staff is a console account. Role is assigned here and nowhere else; it is
// never derived from the email address.
type Staff struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Active       bool   `db:"active"`
	model.Metadata
}
