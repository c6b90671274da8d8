package dto

import (
	"mime/multipart"

	"grandresort/internal/domains/content/model"
	"grandresort/shared"
	gDto "grandresort/shared/dto"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
)

type CreateContentRequest struct {
	Section   string `json:"section"   validate:"required,max=50"`
	Title     string `json:"title"     validate:"required,max=200"`
	Body      string `json:"body"      validate:"omitempty"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Position  int    `json:"position"  validate:"omitempty,min=0"`
	Published bool   `json:"published"`
}

func (c *CreateContentRequest) ToModel(user string) model.ContentBlock {
	return model.ContentBlock{
		ID:        uuid.NewString(),
		Section:   c.Section,
		Title:     c.Title,
		Body:      c.Body,
		ImageURL:  c.ImageURL,
		Position:  c.Position,
		Published: c.Published,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateContentRequest struct {
	Section   string `db:"section"   json:"section"   validate:"omitempty,max=50"`
	Title     string `db:"title"     json:"title"     validate:"omitempty,max=200"`
	Body      string `db:"body"      json:"body"      validate:"omitempty"`
	ImageURL  string `db:"image_url" json:"image_url" validate:"omitempty,url"`
	Position  *int   `db:"position"  json:"position"  validate:"omitempty,min=0"`
	Published *bool  `db:"published" json:"published" validate:"omitempty"`
}

type UploadImageRequest struct {
	File multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type ContentResponse struct {
	ID        string `json:"id"`
	Section   string `json:"section"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
	gDto.Metadata
}

func (r *ContentResponse) FromModel(model model.ContentBlock) {
	r.ID = model.ID
	r.Section = model.Section
	r.Title = model.Title
	r.Body = model.Body
	r.ImageURL = model.ImageURL
	r.Position = model.Position
	r.Published = model.Published
	r.Metadata.FromModel(model.Metadata)
}

type GetContentsResponse struct {
	Contents  []ContentResponse `json:"contents"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContentsResponse) FromModels(models []model.ContentBlock, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contents = make([]ContentResponse, len(models))
	for i, mod := range models {
		r.Contents[i].FromModel(mod)
	}
}

// PublishedContentResponse is the public site payload, grouped client-side
// by section.
type PublishedContentResponse struct {
	Contents []ContentResponse `json:"contents"`
}

func (r *PublishedContentResponse) FromModels(models []model.ContentBlock) {
	r.Contents = make([]ContentResponse, len(models))
	for i, mod := range models {
		r.Contents[i].FromModel(mod)
	}
}
