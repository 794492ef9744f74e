package notification

import (
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type BroadcastRequest struct {
	SenderID string `json:"-"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

func (r *BroadcastRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NotificationResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Message         string  `json:"message"`
	Target          Target  `json:"target"`
	IsRead          bool    `json:"read"`
	CreatedAt       string  `json:"date"`
	SenderID        *string `json:"sender_id,omitempty"`
	SenderFirstName *string `json:"sender_first_name,omitempty"`
	SenderLastName  *string `json:"sender_last_name,omitempty"`
	SenderUserCode  *string `json:"sender_user_code,omitempty"`
}

type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func ToNotificationResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:              n.ID,
		Title:           n.Title,
		Message:         n.Message,
		Target:          n.Target,
		IsRead:          n.IsRead,
		CreatedAt:       n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		SenderID:        n.SenderID,
		SenderFirstName: n.SenderFirstName,
		SenderLastName:  n.SenderLastName,
		SenderUserCode:  n.SenderUserCode,
	}
}

func ToNotificationResponses(list []Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
