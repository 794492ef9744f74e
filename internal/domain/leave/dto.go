package leave

import (
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type ApplyRequest struct {
	UserID    string `json:"-"`
	LeaveDate string `json:"leave_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.LeaveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	LeaveID         string  `json:"leave_id"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id is required",
		})
	}
	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Approved, Rejected, Pending",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LeaveDate       string  `json:"leave_date"`
	EndDate         string  `json:"end_date"`
	Reason          string  `json:"reason"`
	Status          Status  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Days            int     `json:"days"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Email           *string `json:"email,omitempty"`
	ProfileImage    *string `json:"profile_image,omitempty"`
	ContactNumber   *string `json:"contact_number,omitempty"`
	University      *string `json:"university,omitempty"`
}

func ToLeaveResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		LeaveDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		Reason:          l.Reason,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
		Days:            l.Days(),
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		ProfileImage:    l.ProfileImage,
		ContactNumber:   l.ContactNumber,
		University:      l.University,
	}
}

func ToLeaveResponses(list []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(list))
	for _, l := range list {
		out = append(out, ToLeaveResponse(l))
	}
	return out
}
