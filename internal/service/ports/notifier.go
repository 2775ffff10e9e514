package ports

import (
	"context"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

// Notifier delivers guest and staff messages. Errors wrap
// domain.ErrNotificationDeliveryFailed and are never fatal to the caller.
type Notifier interface {
	Notify(ctx context.Context, userID int64, tmpl domain.Template, params domain.NotificationParams) error
	NotifyStaff(ctx context.Context, n domain.StaffNotification) error
}
