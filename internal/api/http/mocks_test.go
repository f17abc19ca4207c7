package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/service"
)

type MockReservationService struct{ mock.Mock }

func (m *MockReservationService) CreateCart(ctx context.Context, actor domain.Actor, input service.CreateCartInput) (*domain.CartReservation, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartReservation), args.Error(1)
}

func (m *MockReservationService) CreateTractor(ctx context.Context, actor domain.Actor, input service.CreateTractorInput) (*domain.TractorReservation, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TractorReservation), args.Error(1)
}

func (m *MockReservationService) CreateChainsaw(ctx context.Context, actor domain.Actor, input service.CreateChainsawInput) (*domain.ChainsawReservation, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChainsawReservation), args.Error(1)
}

func (m *MockReservationService) TransitionCart(ctx context.Context, actor domain.Actor, id int32, newStatus domain.CartStatus, adminNotes string) (*domain.CartReservation, error) {
	args := m.Called(ctx, actor, id, newStatus, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartReservation), args.Error(1)
}

func (m *MockReservationService) TransitionTractor(ctx context.Context, actor domain.Actor, id int32, newStatus domain.CartStatus, adminNotes string) (*domain.TractorReservation, error) {
	args := m.Called(ctx, actor, id, newStatus, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TractorReservation), args.Error(1)
}

func (m *MockReservationService) TransitionChainsaw(ctx context.Context, actor domain.Actor, id int32, newStatus domain.ChainsawStatus, adminNotes string) (*domain.ChainsawReservation, error) {
	args := m.Called(ctx, actor, id, newStatus, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChainsawReservation), args.Error(1)
}

func (m *MockReservationService) CancelCart(ctx context.Context, actor domain.Actor, id int32) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockReservationService) CancelTractor(ctx context.Context, actor domain.Actor, id int32) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockReservationService) CancelChainsaw(ctx context.Context, actor domain.Actor, id int32) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockReservationService) GetCart(ctx context.Context, actor domain.Actor, id int32) (*domain.CartReservation, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartReservation), args.Error(1)
}

func (m *MockReservationService) GetTractor(ctx context.Context, actor domain.Actor, id int32) (*domain.TractorReservation, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TractorReservation), args.Error(1)
}

func (m *MockReservationService) GetChainsaw(ctx context.Context, actor domain.Actor, id int32) (*domain.ChainsawReservation, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChainsawReservation), args.Error(1)
}

func (m *MockReservationService) ListCarts(ctx context.Context, actor domain.Actor) ([]domain.CartReservation, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartReservation), args.Error(1)
}

func (m *MockReservationService) ListTractors(ctx context.Context, actor domain.Actor) ([]domain.TractorReservation, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TractorReservation), args.Error(1)
}

func (m *MockReservationService) ListChainsaws(ctx context.Context, actor domain.Actor) ([]domain.ChainsawReservation, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChainsawReservation), args.Error(1)
}

type MockSettingsService struct{ mock.Mock }

func (m *MockSettingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingsService) Set(ctx context.Context, actor domain.Actor, key, value, description string) error {
	return m.Called(ctx, actor, key, value, description).Error(0)
}

func (m *MockSettingsService) List(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingsService) EnsureDefaults(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

type MockAuditService struct{ mock.Mock }

func (m *MockAuditService) ListEntries(ctx context.Context, actor domain.Actor, entityType string, page, pageSize int32) ([]domain.AuditEntry, int32, error) {
	args := m.Called(ctx, actor, entityType, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), args.Get(1).(int32), args.Error(2)
}
