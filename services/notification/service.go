package notification

import (
	"context"
	"fmt"

	"mediflow/utils"

	"firebase.google.com/go/v4/messaging"
)

// SendPushNotification looks up the account's FCM token and sends a push.
// Failures are returned to the caller, which is expected to log and continue;
// a push must never fail the request that triggered it.
func (s *DefaultNotificationService) SendPushNotification(
	ctx context.Context,
	accountID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendPushNotification: FCM client not initialized")
	}

	account, err := s.Accounts.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find account %s: %w", accountID, err)
	}
	if account == nil || account.FCMToken == "" {
		return fmt.Errorf("SendPushNotification: account %s has no FCM token", accountID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = account.Role
	}

	msg := &messaging.Message{
		Token: account.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
