package dto

import (
	"grandresort/internal/domains/settings/model"
	gDto "grandresort/shared/dto"
)

type UpsertSettingRequest struct {
	Value       string `json:"value"       validate:"required"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

type SettingResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *SettingResponse) FromModel(model model.Setting) {
	r.Key = model.Key
	r.Value = model.Value
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetSettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting) {
	r.Settings = make([]SettingResponse, len(models))
	for i, mod := range models {
		r.Settings[i].FromModel(mod)
	}
}
