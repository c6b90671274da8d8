package dto

import (
	"grandresort/internal/domains/staff/model"
	"grandresort/shared"
	gDto "grandresort/shared/dto"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=SUPER_ADMIN MANAGER RECEPTION HOUSEKEEPING ACCOUNTANT"`
}

func (c *CreateStaffRequest) ToModel(user, passwordHash string) model.Staff {
	return model.Staff{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: passwordHash,
		Role:         c.Role,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Role   string `db:"role"   json:"role"   validate:"omitempty,oneof=SUPER_ADMIN MANAGER RECEPTION HOUSEKEEPING ACCOUNTANT"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type StaffResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
