package notification

import (
	"context"

	accountRepo "mediflow/database/repository/account"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	// SendPushNotification sends a push to the account's registered device.
	SendPushNotification(ctx context.Context, accountID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Accounts accountRepo.AccountRepository
}
