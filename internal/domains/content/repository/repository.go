package repository

import (
	"context"

	"grandresort/infras/otel"
	"grandresort/infras/postgres"
	"grandresort/internal/domains/content/model"
	gDto "grandresort/shared/dto"
	gRepo "grandresort/shared/repository"
)

type Content interface {
	Insert(ctx context.Context, model model.ContentBlock) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ContentBlock, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContentBlock, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ContentBlock]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Content {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContentBlock](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
