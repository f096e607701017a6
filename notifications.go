package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Notification is a message delivered to a single user. Real-time delivery
// happens over a separate event stream; this service only covers the stored
// representation.
type Notification struct {
	ID         uint      `json:"notification_id"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	UserID     uint      `json:"user_id"`
	Type       string    `json:"type"`
	ReadStatus bool      `json:"read_status"`
}

// NotificationInput carries the fields submitted when creating or updating
// a notification.
type NotificationInput struct {
	Message    string `json:"message"`
	UserID     uint   `json:"user_id"`
	Type       string `json:"type,omitempty"`
	ReadStatus bool   `json:"read_status,omitempty"`
}

// NotificationsService wraps the /notifications endpoints.
type NotificationsService struct {
	client *Client
}

func (s *NotificationsService) Create(ctx context.Context, input NotificationInput) (*Notification, error) {
	var out struct {
		Notification *Notification `json:"notification"`
	}
	if err := s.client.post(ctx, "/notifications", input, &out); err != nil {
		return nil, err
	}
	return out.Notification, nil
}

func (s *NotificationsService) Get(ctx context.Context, id uint) (*Notification, error) {
	var out struct {
		Notification *Notification `json:"notification"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/notifications/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Notification, nil
}

func (s *NotificationsService) ListByUser(ctx context.Context, userID uint) ([]Notification, error) {
	var out struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/notifications/user/%d", userID), &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

func (s *NotificationsService) Update(ctx context.Context, id uint, input NotificationInput) (*Notification, error) {
	var out struct {
		Notification *Notification `json:"notification"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/notifications/%d", id), input, &out); err != nil {
		return nil, err
	}
	return out.Notification, nil
}

func (s *NotificationsService) Delete(ctx context.Context, id uint) error {
	return s.client.delete(ctx, fmt.Sprintf("/notifications/%d", id))
}

// Broadcast pushes a message to every connected user via the realtime
// channel.
func (s *NotificationsService) Broadcast(ctx context.Context, message string) error {
	payload := struct {
		Message string `json:"message"`
	}{Message: message}
	return s.client.post(ctx, "/broadcast", payload, nil)
}
