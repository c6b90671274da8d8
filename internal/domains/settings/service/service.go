package service

import (
	"context"
	"fmt"

	"grandresort/config"
	"grandresort/infras/otel"
	"grandresort/internal/domains/settings/model"
	"grandresort/internal/domains/settings/model/dto"
	"grandresort/internal/domains/settings/repository"
	"grandresort/shared"
	"grandresort/shared/cache"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	"grandresort/shared/failure"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSetting    = "setting:get"
	cacheGetAllSetting = "setting:gets"
)

type Settings interface {
	GetAll(ctx context.Context) (dto.GetSettingsResponse, error)
	Get(ctx context.Context, key string) (dto.SettingResponse, error)
	Upsert(ctx context.Context, req dto.UpsertSettingRequest, key string) error
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllSetting, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllSetting).Msg("cache hit for settings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldKey, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllSetting, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSetting, key)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for setting")

		return res, nil
	}

	setting, err := s.repo.Get(ctx, shared.FilterByID(key, model.FieldKey, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get setting")

		return res, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Key == constant.Empty {
		return res, failure.NotFound("setting not found") // nolint:wrapcheck
	}

	res.FromModel(setting)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save setting to cache")
		}
	}()

	return res, nil
}

// Upsert writes a setting, creating the key on first write. Keys are
// free-form so an operator can add new settings without a deploy.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertSettingRequest, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(key, model.FieldKey, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	if exist {
		updatedFields := map[string]any{
			model.FieldValue:         req.Value,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if req.Description != constant.Empty {
			updatedFields[model.FieldDescription] = req.Description
		}

		if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update setting")

			return fmt.Errorf("failed to update setting: %w", err)
		}
	} else {
		setting := model.Setting{
			Key:         key,
			Value:       req.Value,
			Description: req.Description,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err := s.repo.Insert(ctx, setting); err != nil {
			log.Error().Err(err).Msg("failed to create setting")

			return fmt.Errorf("failed to create setting: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSetting, key)); err != nil {
			log.Error().Err(err).Msg("failed to delete setting from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSetting)
	}()

	return nil
}
