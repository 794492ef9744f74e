package calendar

import (
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type CreateEventRequest struct {
	Date        string  `json:"date"`
	IsLeaveDay  bool    `json:"is_leave_day"`
	Description *string `json:"description"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	IsLeaveDay  bool    `json:"is_leave_day"`
	Description *string `json:"description,omitempty"`
}

func ToEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		IsLeaveDay:  e.IsLeaveDay,
		Description: e.Description,
	}
}

func ToEventResponses(list []Event) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToEventResponse(e))
	}
	return out
}
