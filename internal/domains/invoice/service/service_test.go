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
	invoiceMocks "grandresort/internal/domains/invoice/mocks"
	"grandresort/internal/domains/invoice/model"
	"grandresort/internal/domains/invoice/model/dto"
	"grandresort/internal/domains/invoice/service"
	resMocks "grandresort/internal/domains/reservation/mocks"
	resModel "grandresort/internal/domains/reservation/model"
	cacheMocks "grandresort/shared/cache/mocks"
	"grandresort/shared/constant"
	"grandresort/shared/failure"
)

func newInvoiceService(t *testing.T) (service.Invoice, *invoiceMocks.MockInvoice, *resMocks.MockReservation, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockResRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockResRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockResRepo, mockCache
}

func confirmedReservation() resModel.Reservation {
	return resModel.Reservation{
		ID:        "res-1",
		Reference: "GR-204417",
		GuestName: "Asha Rao",
		Subtotal:  decimal.NewFromInt(7500),
		Tax:       decimal.NewFromInt(900),
		Total:     decimal.NewFromInt(8400),
		Status:    resModel.StatusConfirmed,
	}
}

// The billed amounts must be the reservation's frozen pricing columns; the
// create request carries no amounts at all.
func TestInvoiceService_Create_CopiesReservationPricing(t *testing.T) {
	svc, mockRepo, mockResRepo, mockCache := newInvoiceService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockResRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(confirmedReservation(), nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice model.Invoice) error {
			assert.Equal(t, "res-1", invoice.ReservationID)
			assert.Equal(t, "Asha Rao", invoice.GuestName)
			assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(7500)))
			assert.True(t, invoice.Tax.Equal(decimal.NewFromInt(900)))
			assert.True(t, invoice.Total.Equal(decimal.NewFromInt(8400)))
			assert.Equal(t, model.StatusIssued, invoice.Status)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
	err := svc.Create(ctx, dto.CreateInvoiceRequest{ReservationID: "res-1"})

	assert.NoError(t, err)
}

func TestInvoiceService_Create_UnknownReservation(t *testing.T) {
	svc, _, mockResRepo, _ := newInvoiceService(t)

	mockResRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(resModel.Reservation{}, nil)

	err := svc.Create(context.Background(), dto.CreateInvoiceRequest{ReservationID: "missing"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestInvoiceService_Create_ReservationLookupError(t *testing.T) {
	svc, _, mockResRepo, _ := newInvoiceService(t)

	mockResRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(resModel.Reservation{}, errors.New("database error"))

	err := svc.Create(context.Background(), dto.CreateInvoiceRequest{ReservationID: "res-1"})

	assert.Error(t, err)
}

func TestInvoiceService_Get_NotFound(t *testing.T) {
	svc, mockRepo, _, mockCache := newInvoiceService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache: nil"))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Invoice{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
