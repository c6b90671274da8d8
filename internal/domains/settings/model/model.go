package model

import (
	"grandresort/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey         = "key"
	FieldValue       = "value"
	FieldDescription = "description"
)

// Well-known setting keys. New keys may be added without a code change; the
// table is free-form.
const (
	KeyHotelName      = "hotel_name"
	KeyContactEmail   = "contact_email"
	KeyContactPhone   = "contact_phone"
	KeyTaxRatePercent = "tax_rate_percent"
	KeyCheckInTime    = "check_in_time"
	KeyCheckOutTime   = "check_out_time"
)

type Setting struct {
	Key         string `db:"key"`
	Value       string `db:"value"`
	Description string `db:"description"`
	model.Metadata
}
