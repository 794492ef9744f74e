package notification

import (
	"context"
	"fmt"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
)

// ListLimit caps how many notifications a single fetch returns.
const ListLimit = 30

type NotificationService interface {
	// Notify sends a personal notification to one user.
	Notify(ctx context.Context, recipientID string, senderID *string, title, message string) error

	// Broadcast stores a single company-wide notification visible to everyone.
	Broadcast(ctx context.Context, req notification.BroadcastRequest) (notification.NotificationResponse, error)

	// List returns the newest notifications addressed to the user, personal
	// and broadcast combined, plus the unread badge count.
	List(ctx context.Context, userID string) (notification.ListResponse, error)

	// MarkRead marks one personal notification as read.
	MarkRead(ctx context.Context, id, userID string) (notification.NotificationResponse, error)

	// Clear deletes the user's personal notifications.
	Clear(ctx context.Context, userID string) error
}

type notificationServiceImpl struct {
	notificationRepo notification.Repository
}

func NewNotificationService(notificationRepo notification.Repository) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
	}
}

// Notify implements NotificationService.
func (s *notificationServiceImpl) Notify(ctx context.Context, recipientID string, senderID *string, title, message string) error {
	n := notification.Notification{
		RecipientID: &recipientID,
		SenderID:    senderID,
		Title:       title,
		Message:     message,
		Target:      notification.TargetUser,
	}

	if err := s.notificationRepo.Create(ctx, &n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// Broadcast implements NotificationService.
func (s *notificationServiceImpl) Broadcast(ctx context.Context, req notification.BroadcastRequest) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	n := notification.Notification{
		SenderID: &req.SenderID,
		Title:    req.Title,
		Message:  req.Message,
		Target:   notification.TargetAll,
	}

	if err := s.notificationRepo.Create(ctx, &n); err != nil {
		return notification.NotificationResponse{}, fmt.Errorf("failed to create broadcast: %w", err)
	}

	return notification.ToNotificationResponse(n), nil
}

// List implements NotificationService.
func (s *notificationServiceImpl) List(ctx context.Context, userID string) (notification.ListResponse, error) {
	notifications, err := s.notificationRepo.ListForUser(ctx, userID, ListLimit)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notification.ListResponse{
		Notifications: notification.ToNotificationResponses(notifications),
		UnreadCount:   unread,
	}, nil
}

// MarkRead implements NotificationService.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id, userID string) (notification.NotificationResponse, error) {
	n, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		return notification.NotificationResponse{}, err
	}

	return notification.ToNotificationResponse(*n), nil
}

// Clear implements NotificationService.
func (s *notificationServiceImpl) Clear(ctx context.Context, userID string) error {
	return s.notificationRepo.ClearForUser(ctx, userID)
}
