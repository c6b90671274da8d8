package dto

import (
	"grandresort/internal/domains/room/model"
	"grandresort/shared"
	gDto "grandresort/shared/dto"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Name        string          `json:"name"         validate:"required,max=100"`
	Description string          `json:"description"  validate:"omitempty"`
	NightlyRate decimal.Decimal `json:"nightly_rate" validate:"required"`
	Capacity    int             `json:"capacity"     validate:"required,min=1,max=20"`
	ImageURL    string          `json:"image_url"    validate:"omitempty,url"`
	Amenities   string          `json:"amenities"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:                 uuid.NewString(),
		Name:               c.Name,
		Description:        c.Description,
		NightlyRate:        c.NightlyRate,
		Capacity:           c.Capacity,
		ImageURL:           c.ImageURL,
		Amenities:          c.Amenities,
		Available:          true,
		HousekeepingStatus: model.HousekeepingClean,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string           `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description string           `db:"description"  json:"description"  validate:"omitempty"`
	NightlyRate *decimal.Decimal `db:"nightly_rate" json:"nightly_rate" validate:"omitempty"`
	Capacity    int              `db:"capacity"     json:"capacity"     validate:"omitempty,min=1,max=20"`
	ImageURL    string           `db:"image_url"    json:"image_url"    validate:"omitempty,url"`
	Amenities   string           `db:"amenities"    json:"amenities"    validate:"omitempty"`
	Available   *bool            `db:"available"    json:"available"    validate:"omitempty"`
}

type UpdateHousekeepingRequest struct {
	Status string `db:"housekeeping_status" json:"status" validate:"required,oneof=CLEAN DIRTY IN_PROGRESS"`
}

type RoomResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	NightlyRate        decimal.Decimal `json:"nightly_rate"`
	Capacity           int             `json:"capacity"`
	ImageURL           string          `json:"image_url"`
	Amenities          string          `json:"amenities"`
	Available          bool            `json:"available"`
	HousekeepingStatus string          `json:"housekeeping_status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.NightlyRate = model.NightlyRate
	r.Capacity = model.Capacity
	r.ImageURL = model.ImageURL
	r.Amenities = model.Amenities
	r.Available = model.Available
	r.HousekeepingStatus = model.HousekeepingStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailableRoomResponse is the public catalog entry offered to the booking
// wizard. Only rooms flagged available are ever listed here.
type AvailableRoomResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Capacity    int             `json:"capacity"`
	ImageURL    string          `json:"image_url"`
	Amenities   string          `json:"amenities"`
}

func (r *AvailableRoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.NightlyRate = model.NightlyRate
	r.Capacity = model.Capacity
	r.ImageURL = model.ImageURL
	r.Amenities = model.Amenities
}

type GetAvailableRoomsResponse struct {
	Rooms []AvailableRoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
