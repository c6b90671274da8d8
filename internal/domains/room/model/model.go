package model

import (
	"grandresort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                 = "id"
	FieldName               = "name"
	FieldDescription        = "description"
	FieldNightlyRate        = "nightly_rate"
	FieldCapacity           = "capacity"
	FieldImageURL           = "image_url"
	FieldAmenities          = "amenities"
	FieldAvailable          = "available"
	FieldHousekeepingStatus = "housekeeping_status"
)

// Housekeeping statuses. Rooms start CLEAN and cycle through DIRTY and
// IN_PROGRESS as the housekeeping staff works them.
const (
	HousekeepingClean      = "CLEAN"
	HousekeepingDirty      = "DIRTY"
	HousekeepingInProgress = "IN_PROGRESS"
)

type Room struct {
	ID                 string          `db:"id"`
	Name               string          `db:"name"`
	Description        string          `db:"description"`
	NightlyRate        decimal.Decimal `db:"nightly_rate"`
	Capacity           int             `db:"capacity"`
	ImageURL           string          `db:"image_url"`
	Amenities          string          `db:"amenities"`
	Available          bool            `db:"available"`
	HousekeepingStatus string          `db:"housekeeping_status"`
	model.Metadata
}
