package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Onwuagba/Telinga/internal/mocks"
	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestTracker_Reconcile(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("updates records whose provider status moved", func(t *testing.T) {
		mockDeliveryRepo := &mocks.DeliveryRepository{}
		mockSMS := &mocks.TwilioClient{}

		records := []model.DeliveryRecord{
			{ID: 1, Channel: model.ChannelSMS, ProviderMsgID: "SM1", Status: model.DeliveryStatusQueued},
			{ID: 2, Channel: model.ChannelSMS, ProviderMsgID: "SM2", Status: model.DeliveryStatusSent},
		}

		mockDeliveryRepo.On("FindByStatuses", model.NonTerminalStatuses, 500).Return(records, nil)
		mockSMS.On("FetchMessage", ctx, "SM1").Return(twilio.Message{SID: "SM1", Status: "delivered"}, nil)
		mockSMS.On("FetchMessage", ctx, "SM2").Return(twilio.Message{SID: "SM2", Status: "delivered"}, nil)
		mockDeliveryRepo.On("UpdateStatus", ctx, int64(1), model.DeliveryStatusDelivered).Return(nil)
		mockDeliveryRepo.On("UpdateStatus", ctx, int64(2), model.DeliveryStatusDelivered).Return(nil)

		tracker := service.NewTrackerService(mockDeliveryRepo, mockSMS, logger)

		err := tracker.Reconcile(ctx)

		assert.NoError(t, err)
		mockDeliveryRepo.AssertExpectations(t)
	})

	t.Run("unchanged status writes nothing", func(t *testing.T) {
		mockDeliveryRepo := &mocks.DeliveryRepository{}
		mockSMS := &mocks.TwilioClient{}

		records := []model.DeliveryRecord{
			{ID: 1, Channel: model.ChannelSMS, ProviderMsgID: "SM1", Status: model.DeliveryStatusSent},
		}

		mockDeliveryRepo.On("FindByStatuses", model.NonTerminalStatuses, 500).Return(records, nil)
		mockSMS.On("FetchMessage", ctx, "SM1").Return(twilio.Message{SID: "SM1", Status: "sent"}, nil)

		tracker := service.NewTrackerService(mockDeliveryRepo, mockSMS, logger)

		err := tracker.Reconcile(ctx)

		assert.NoError(t, err)
		mockDeliveryRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("one record's lookup failure does not abort the scan", func(t *testing.T) {
		mockDeliveryRepo := &mocks.DeliveryRepository{}
		mockSMS := &mocks.TwilioClient{}

		records := []model.DeliveryRecord{
			{ID: 1, Channel: model.ChannelSMS, ProviderMsgID: "SM1", Status: model.DeliveryStatusQueued},
			{ID: 2, Channel: model.ChannelSMS, ProviderMsgID: "SM2", Status: model.DeliveryStatusQueued},
		}

		mockDeliveryRepo.On("FindByStatuses", model.NonTerminalStatuses, 500).Return(records, nil)
		mockSMS.On("FetchMessage", ctx, "SM1").Return(twilio.Message{}, errors.New(twilio.ErrorCodeServerError))
		mockSMS.On("FetchMessage", ctx, "SM2").Return(twilio.Message{SID: "SM2", Status: "delivered"}, nil)
		mockDeliveryRepo.On("UpdateStatus", ctx, int64(2), model.DeliveryStatusDelivered).Return(nil)

		tracker := service.NewTrackerService(mockDeliveryRepo, mockSMS, logger)

		err := tracker.Reconcile(ctx)

		assert.NoError(t, err)
		mockDeliveryRepo.AssertExpectations(t)
	})

	t.Run("email records are skipped", func(t *testing.T) {
		mockDeliveryRepo := &mocks.DeliveryRepository{}
		mockSMS := &mocks.TwilioClient{}

		records := []model.DeliveryRecord{
			{ID: 1, Channel: model.ChannelEmail, ProviderMsgID: "msg-001", Status: model.DeliveryStatusQueued},
		}

		mockDeliveryRepo.On("FindByStatuses", model.NonTerminalStatuses, 500).Return(records, nil)

		tracker := service.NewTrackerService(mockDeliveryRepo, mockSMS, logger)

		err := tracker.Reconcile(ctx)

		assert.NoError(t, err)
		mockSMS.AssertNotCalled(t, "FetchMessage", mock.Anything, mock.Anything)
	})

	t.Run("load failure is returned", func(t *testing.T) {
		mockDeliveryRepo := &mocks.DeliveryRepository{}
		mockSMS := &mocks.TwilioClient{}

		mockDeliveryRepo.On("FindByStatuses", model.NonTerminalStatuses, 500).
			Return(nil, errors.New("connection refused"))

		tracker := service.NewTrackerService(mockDeliveryRepo, mockSMS, logger)

		err := tracker.Reconcile(ctx)

		assert.Error(t, err)
	})
}
