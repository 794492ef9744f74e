package diary

import (
	"mime/multipart"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type SubmitRequest struct {
	UserID      string  `json:"-"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Date        *string `json:"date"`
	FileLink    *string `json:"file_link"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	DiaryID      string `json:"diary_id"`
	Status       string `json:"status"`
	ReplyMessage string `json:"reply_message"`
	AdminID      string `json:"-"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DiaryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "diary_id",
			Message: "diary_id is required",
		})
	}
	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Replied, Pending, Approved, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DiaryResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	FilePath    *string `json:"file_path,omitempty"`
	FileLink    *string `json:"file_link,omitempty"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      Status  `json:"status"`

	ReplyMessage  *string `json:"reply_message,omitempty"`
	ReplyDate     *string `json:"reply_date,omitempty"`
	RepliedBy     *string `json:"replied_by,omitempty"`
	ReplyFilePath *string `json:"reply_file_path,omitempty"`
	ReplyFileName *string `json:"reply_file_name,omitempty"`

	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	ProfileImage     *string `json:"profile_image,omitempty"`
	TeamName         *string `json:"team_name,omitempty"`
	JobRoleName      *string `json:"job_role_name,omitempty"`
	ReplierFirstName *string `json:"replier_first_name,omitempty"`
	ReplierLastName  *string `json:"replier_last_name,omitempty"`
	ReplierEmail     *string `json:"replier_email,omitempty"`
}

func ToDiaryResponse(d DailyDiary) DiaryResponse {
	resp := DiaryResponse{
		ID:               d.ID,
		UserID:           d.UserID,
		Name:             d.Name,
		Description:      d.Description,
		FilePath:         d.FilePath,
		FileLink:         d.FileLink,
		Date:             d.Date.Format("2006-01-02"),
		Time:             d.Time,
		Status:           d.Status,
		ReplyMessage:     d.ReplyMessage,
		RepliedBy:        d.RepliedBy,
		ReplyFilePath:    d.ReplyFilePath,
		ReplyFileName:    d.ReplyFileName,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		ProfileImage:     d.ProfileImage,
		TeamName:         d.TeamName,
		JobRoleName:      d.JobRoleName,
		ReplierFirstName: d.ReplierFirstName,
		ReplierLastName:  d.ReplierLastName,
		ReplierEmail:     d.ReplierEmail,
	}
	if d.ReplyDate != nil {
		s := d.ReplyDate.Format("2006-01-02T15:04:05Z07:00")
		resp.ReplyDate = &s
	}
	return resp
}

func ToDiaryResponses(list []DailyDiary) []DiaryResponse {
	out := make([]DiaryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToDiaryResponse(d))
	}
	return out
}
