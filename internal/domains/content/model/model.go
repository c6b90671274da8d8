package model

import (
	"grandresort/shared/model"
)

const (
	TableName  = "content_blocks"
	EntityName = "content"

	FieldID        = "id"
	FieldSection   = "section"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldImageURL  = "image_url"
	FieldPosition  = "position"
	FieldPublished = "published"
)

// ContentBlock is one editable block of the marketing site: a hero banner,
// an amenity card, a gallery image and so on. The public site renders only
// published blocks.
type ContentBlock struct {
	ID        string `db:"id"`
	Section   string `db:"section"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	ImageURL  string `db:"image_url"`
	Position  int    `db:"position"`
	Published bool   `db:"published"`
	model.Metadata
}
