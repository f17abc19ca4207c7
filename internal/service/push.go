package service

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"condoreserve-backend/internal/logger"
)

type fcmPushSender struct {
	client *messaging.Client
}

// NewFCMPushSender builds a push sender backed by Firebase Cloud
// Messaging using a service account credentials file.
func NewFCMPushSender(ctx context.Context, credentialsFile string) (PushSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &fcmPushSender{client: client}, nil
}

func (s *fcmPushSender) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	return err
}

type noopPushSender struct{}

// NewNoopPushSender is used when push credentials are not configured.
func NewNoopPushSender() PushSender {
	return noopPushSender{}
}

func (noopPushSender) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	logger.Debug("Push delivery disabled, dropping message", "title", title)
	return nil
}
