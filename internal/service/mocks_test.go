package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"condoreserve-backend/internal/domain"
)

type MockCartRepo struct{ mock.Mock }

func (m *MockCartRepo) Create(ctx context.Context, r *domain.CartReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCartRepo) GetByID(ctx context.Context, id int32) (*domain.CartReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartReservation), args.Error(1)
}

func (m *MockCartRepo) Update(ctx context.Context, r *domain.CartReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCartRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepo) ListByRequester(ctx context.Context, requesterID int32) ([]domain.CartReservation, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartReservation), args.Error(1)
}

func (m *MockCartRepo) ListAll(ctx context.Context) ([]domain.CartReservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartReservation), args.Error(1)
}

func (m *MockCartRepo) CountActiveByRequester(ctx context.Context, requesterID int32) (int32, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockCartRepo) CountApprovedOnDate(ctx context.Context, date time.Time) (int32, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockCartRepo) ApproveWithCapacityCheck(ctx context.Context, r *domain.CartReservation, capacity int32) error {
	args := m.Called(ctx, r, capacity)
	return args.Error(0)
}

func (m *MockCartRepo) AutoComplete(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockTractorRepo struct{ mock.Mock }

func (m *MockTractorRepo) Create(ctx context.Context, r *domain.TractorReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTractorRepo) GetByID(ctx context.Context, id int32) (*domain.TractorReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TractorReservation), args.Error(1)
}

func (m *MockTractorRepo) Update(ctx context.Context, r *domain.TractorReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTractorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTractorRepo) ListByRequester(ctx context.Context, requesterID int32) ([]domain.TractorReservation, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TractorReservation), args.Error(1)
}

func (m *MockTractorRepo) ListAll(ctx context.Context) ([]domain.TractorReservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TractorReservation), args.Error(1)
}

func (m *MockTractorRepo) AutoComplete(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockChainsawRepo struct{ mock.Mock }

func (m *MockChainsawRepo) Create(ctx context.Context, r *domain.ChainsawReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockChainsawRepo) GetByID(ctx context.Context, id int32) (*domain.ChainsawReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChainsawReservation), args.Error(1)
}

func (m *MockChainsawRepo) Update(ctx context.Context, r *domain.ChainsawReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockChainsawRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChainsawRepo) ListByRequester(ctx context.Context, requesterID int32) ([]domain.ChainsawReservation, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChainsawReservation), args.Error(1)
}

func (m *MockChainsawRepo) ListAll(ctx context.Context) ([]domain.ChainsawReservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChainsawReservation), args.Error(1)
}

func (m *MockChainsawRepo) AutoComplete(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingRepo struct{ mock.Mock }

func (m *MockSettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepo) Upsert(ctx context.Context, setting *domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepo) List(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingRepo) EnsureDefault(ctx context.Context, setting *domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockAuditRepo struct{ mock.Mock }

func (m *MockAuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepo) List(ctx context.Context, entityType string, limit, offset int32) ([]domain.AuditEntry, int32, error) {
	args := m.Called(ctx, entityType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), args.Get(1).(int32), args.Error(2)
}

type MockPushSender struct{ mock.Mock }

func (m *MockPushSender) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	args := m.Called(ctx, deviceToken, title, body, data)
	return args.Error(0)
}

// noopNotifier and noopAudit keep service tests focused on the engine
// rules; notifier fan-out is covered separately.
type noopNotifier struct{}

func (noopNotifier) NotifyUser(userID int32, title, message, link string, attrs map[string]string) {}
func (noopNotifier) NotifyAdmins(title, message, link string, attrs map[string]string)            {}

type noopAudit struct{}

func (noopAudit) RecordCreate(actorID int32, entityType, entityID string, after any)         {}
func (noopAudit) RecordUpdate(actorID int32, entityType, entityID string, before, after any) {}
func (noopAudit) RecordDelete(actorID int32, entityType, entityID string, before any)        {}
