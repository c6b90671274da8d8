package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"grandresort/config"
	"grandresort/infras/otel"
	"grandresort/infras/s3"
	"grandresort/internal/domains/content/model"
	"grandresort/internal/domains/content/model/dto"
	"grandresort/internal/domains/content/repository"
	"grandresort/shared"
	"grandresort/shared/cache"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	"grandresort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetContent       = "content:get"
	cacheGetAllContent    = "content:gets"
	cacheCountContent     = "content:count"
	cachePublishedContent = "content:published"
)

type Content interface {
	Create(ctx context.Context, req dto.CreateContentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContentsResponse, error)
	GetPublished(ctx context.Context) (dto.PublishedContentResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ContentResponse, error)
	Update(ctx context.Context, req dto.UpdateContentRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Content
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create content block")

		return fmt.Errorf("failed to create content block: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content blocks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count content blocks")

		return res, fmt.Errorf("failed to count content blocks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get content blocks")

		return res, fmt.Errorf("failed to get content blocks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content blocks to cache")
		}
	}()

	return res, nil
}

// GetPublished serves the marketing site. It has no auth in front of it, so
// the cache matters more here than anywhere else.
func (s *serviceImpl) GetPublished(ctx context.Context) (res dto.PublishedContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublished")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cachePublishedContent, &res)
	if err == nil {
		log.Info().Str("cacheKey", cachePublishedContent).Msg("cache hit for published content")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPublished,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get published content")

		return res, fmt.Errorf("failed to get published content: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cachePublishedContent, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save published content to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountContent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count content blocks")

		return res, fmt.Errorf("failed to count content blocks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content block")

		return res, nil
	}

	content, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get content block")

		return res, fmt.Errorf("failed to get content block: %w", err)
	}

	if content.ID == constant.Empty {
		return res, failure.NotFound("content block not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content block to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if content block exists")

		return fmt.Errorf("failed to check if content block exists: %w", err)
	}

	if !exist {
		log.Error().Msg("content block not found")

		return failure.NotFound("content block not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update content block")

		return fmt.Errorf("failed to update content block: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete content block from cache")
		}
	}()

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	content, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get content block")

		return fmt.Errorf("failed to get content block: %w", err)
	}

	if content.ID == constant.Empty {
		log.Error().Msg("content block not found")

		return failure.NotFound("content block not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete content block")

		return fmt.Errorf("failed to delete content block: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete content block from cache")
		}

		if content.ImageURL == constant.Empty {
			return
		}

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, content.ImageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", content.ImageURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}()

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, file, fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContent)
		shared.InvalidateCaches(c, s.cache, cacheCountContent)
		shared.InvalidateCaches(c, s.cache, cachePublishedContent)
	}()
}
