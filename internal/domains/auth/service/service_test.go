package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandresort/config"
	"grandresort/infras/jwt"
	jwtMocks "grandresort/infras/jwt/mocks"
	"grandresort/infras/otel/mocks"
	"grandresort/internal/domains/auth/model/dto"
	"grandresort/internal/domains/auth/service"
	staffMocks "grandresort/internal/domains/staff/mocks"
	staffModel "grandresort/internal/domains/staff/model"
	gDto "grandresort/shared/dto"
	"grandresort/shared/failure"
	"grandresort/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *staffMocks.MockStaff, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStaff := staffMocks.NewMockStaff(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return service.New(mockStaff, &config.Config{}, mocks.NewOtel(), mockJWT), mockStaff, mockJWT
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	assert.NoError(t, err)

	return hash
}

func activeStaff(t *testing.T) staffModel.Staff {
	t.Helper()

	return staffModel.Staff{
		ID:           "staff-1",
		Name:         "Admin",
		Email:        "admin@grandresort.example",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         "SUPER_ADMIN",
		Active:       true,
	}
}

func TestAuthService_Login(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(mockStaff *staffMocks.MockStaff, mockJWT *jwtMocks.MockJWT, staff staffModel.Staff)
		wantErr   bool
		wantMsg   string
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "admin@grandresort.example", Password: "correct horse"},
			setupMock: func(mockStaff *staffMocks.MockStaff, mockJWT *jwtMocks.MockJWT, staff staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (staffModel.Staff, error) {
						assert.Equal(t, "admin@grandresort.example", filter.Filters[0].(gDto.Filter).Value)

						return staff, nil
					})
				mockJWT.EXPECT().
					GenerateTokenPair("staff-1", "admin@grandresort.example", "SUPER_ADMIN").
					Return(tokenPair, nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@grandresort.example", Password: "whatever"},
			setupMock: func(mockStaff *staffMocks.MockStaff, _ *jwtMocks.MockJWT, _ staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffModel.Staff{}, nil)
			},
			wantErr: true,
			wantMsg: "invalid email or password",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "admin@grandresort.example", Password: "wrong"},
			setupMock: func(mockStaff *staffMocks.MockStaff, _ *jwtMocks.MockJWT, staff staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
			},
			wantErr: true,
			wantMsg: "invalid email or password",
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "admin@grandresort.example", Password: "correct horse"},
			setupMock: func(mockStaff *staffMocks.MockStaff, _ *jwtMocks.MockJWT, staff staffModel.Staff) {
				staff.Active = false

				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
			},
			wantErr: true,
			wantMsg: "staff account is deactivated",
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "admin@grandresort.example", Password: "correct horse"},
			setupMock: func(mockStaff *staffMocks.MockStaff, mockJWT *jwtMocks.MockJWT, staff staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStaff, mockJWT := newAuthService(t)
			tt.setupMock(mockStaff, mockJWT, activeStaff(t))

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantMsg != "" {
					assert.Contains(t, err.Error(), tt.wantMsg)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "SUPER_ADMIN", res.Role)
			assert.NotEmpty(t, res.Pages)
		})
	}
}

// Both the unknown-email and wrong-password branches must answer with the
// same message, so a caller cannot probe which staff emails exist.
func TestAuthService_Login_DoesNotLeakAccountExistence(t *testing.T) {
	svc, mockStaff, _ := newAuthService(t)

	mockStaff.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(staffModel.Staff{}, errors.New("database error"))
	mockStaff.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeStaff(t), nil)

	_, unknownErr := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@x", Password: "p"})
	_, wrongErr := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@grandresort.example", Password: "p"})

	assert.Error(t, unknownErr)
	assert.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockJWT *jwtMocks.MockJWT)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful refresh",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					RefreshTokens("old-refresh").
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)
			},
		},
		{
			name: "invalid refresh token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					RefreshTokens("old-refresh").
					Return(nil, errors.New("token is expired"))
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockJWT := newAuthService(t)
			tt.setupMock(mockJWT)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access", res.AccessToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(mockStaff *staffMocks.MockStaff, staff staffModel.Staff)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct horse", NewPassword: "battery staple"},
			setupMock: func(mockStaff *staffMocks.MockStaff, staff staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
				mockStaff.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						hash, ok := fields["password_hash"].(string)
						assert.True(t, ok)
						assert.NoError(t, password.Verify("battery staple", hash))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "battery staple"},
			setupMock: func(mockStaff *staffMocks.MockStaff, staff staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "staff not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct horse", NewPassword: "battery staple"},
			setupMock: func(mockStaff *staffMocks.MockStaff, _ staffModel.Staff) {
				mockStaff.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staffModel.Staff{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStaff, _ := newAuthService(t)
			tt.setupMock(mockStaff, activeStaff(t))

			err := svc.ChangePassword(context.Background(), tt.req, "staff-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
