package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandresort/config"
	"grandresort/infras/otel/mocks"
	roomMocks "grandresort/internal/domains/room/mocks"
	"grandresort/internal/domains/room/model"
	"grandresort/internal/domains/room/model/dto"
	"grandresort/internal/domains/room/service"
	cacheMocks "grandresort/shared/cache/mocks"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	"grandresort/shared/failure"
	gModel "grandresort/shared/model"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

// allowCacheWrites relaxes the write-side cache expectations; invalidation
// and save both run on goroutines that may outlive the test body.
func allowCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "successful creation"},
		{name: "repository error", repoErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)
			allowCacheWrites(mockCache)

			mockRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, room model.Room) error {
					if tt.repoErr == nil {
						assert.True(t, room.Available)
						assert.Equal(t, model.HousekeepingClean, room.HousekeepingStatus)
					}

					return tt.repoErr
				})

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			err := svc.Create(ctx, dto.CreateRoomRequest{
				Name:        "Deluxe Suite",
				NightlyRate: decimal.NewFromInt(2500),
				Capacity:    2,
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_GetAll_CacheMiss(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache: nil")).
		Times(2)
	allowCacheWrites(mockCache)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{
			{
				ID:          "room-1",
				Name:        "Deluxe Suite",
				NightlyRate: decimal.NewFromInt(2500),
				Available:   true,
			},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Deluxe Suite", res.Rooms[0].Name)
}

func TestRoomService_GetAvailable_OnlyAvailableFilter(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), "room:available", gomock.Any()).
		Return(errors.New("cache: nil"))
	allowCacheWrites(mockCache)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Len(t, filter.Filters, 1)
			assert.Equal(t, model.FieldAvailable, filter.Filters[0].(gDto.Filter).Field)

			return []model.Room{{ID: "room-1", Name: "Deluxe Suite", Available: true}}, nil
		})

	res, err := svc.GetAvailable(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_GetAvailable_CacheHit(t *testing.T) {
	svc, _, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), "room:available", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res := value.(*dto.GetAvailableRoomsResponse)
			res.Rooms = []dto.AvailableRoomResponse{{ID: "room-1", Name: "Deluxe Suite"}}

			return nil
		})

	res, err := svc.GetAvailable(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name     string
		room     model.Room
		repoErr  error
		wantErr  bool
		wantCode int
	}{
		{
			name: "found",
			room: model.Room{ID: "room-1", Name: "Deluxe Suite", Metadata: gModel.Metadata{}},
		},
		{
			name:     "not found",
			room:     model.Room{},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:    "repository error",
			repoErr: errors.New("database error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("cache: nil"))
			allowCacheWrites(mockCache)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.room, tt.repoErr)

			res, err := svc.Get(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Deluxe Suite", res.Name)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name      string
		exist     bool
		existErr  error
		updateErr error
		wantErr   bool
		wantCode  int
	}{
		{name: "successful update", exist: true},
		{name: "room not found", exist: false, wantErr: true, wantCode: http.StatusNotFound},
		{name: "exist check error", existErr: errors.New("database error"), wantErr: true},
		{name: "update error", exist: true, updateErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)
			allowCacheWrites(mockCache)

			mockRepo.EXPECT().
				Exist(gomock.Any(), gomock.Any()).
				Return(tt.exist, tt.existErr)

			if tt.exist && tt.existErr == nil {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.updateErr)
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			err := svc.Update(ctx, dto.UpdateRoomRequest{Name: "Renamed Suite"}, "room-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_UpdateHousekeeping(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)
	allowCacheWrites(mockCache)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.HousekeepingDirty, fields["housekeeping_status"])

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
	err := svc.UpdateHousekeeping(ctx, dto.UpdateHousekeepingRequest{Status: model.HousekeepingDirty}, "room-1")

	assert.NoError(t, err)
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		exist    bool
		wantErr  bool
		wantCode int
	}{
		{name: "successful delete", exist: true},
		{name: "room not found", exist: false, wantErr: true, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newRoomService(t)
			allowCacheWrites(mockCache)

			mockRepo.EXPECT().
				Exist(gomock.Any(), gomock.Any()).
				Return(tt.exist, nil)

			if tt.exist {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.Delete(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
