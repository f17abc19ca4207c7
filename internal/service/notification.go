package service

import (
	"context"
	"time"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/logger"
	"condoreserve-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

const deliveryTimeout = 10 * time.Second

// notifier persists an in-app notification row and sends a best-effort
// push for every event. Dispatch happens on a background goroutine:
// failures are logged and never reach the calling mutation.
type notifier struct {
	noteRepo repository.NotificationRepository
	userRepo repository.UserRepository
	push     PushSender
}

func NewNotifier(noteRepo repository.NotificationRepository, userRepo repository.UserRepository, push PushSender) Notifier {
	return &notifier{
		noteRepo: noteRepo,
		userRepo: userRepo,
		push:     push,
	}
}

func (n *notifier) NotifyUser(userID int32, title, message, link string, attrs map[string]string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()
		n.deliver(ctx, userID, title, message, link, attrs)
	}()
}

func (n *notifier) NotifyAdmins(title, message, link string, attrs map[string]string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		admins, err := n.userRepo.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admins for notification", "error", err, "title", title)
			return
		}
		for _, admin := range admins {
			n.deliver(ctx, admin.ID, title, message, link, attrs)
		}
	}()
}

func (n *notifier) deliver(ctx context.Context, userID int32, title, message, link string, attrs map[string]string) {
	note := &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Link:       link,
		Attributes: attrs,
	}
	if err := n.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to store notification", "error", err, "user_id", userID, "title", title)
	}

	user, err := n.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for push delivery", "error", err, "user_id", userID)
		return
	}
	if user.DeviceToken == "" {
		return
	}
	if err := n.push.Send(ctx, user.DeviceToken, title, message, attrs); err != nil {
		logger.Error("Push delivery failed", "error", err, "user_id", userID, "title", title)
	}
}
