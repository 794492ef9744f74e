package task

import (
	"mime/multipart"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type CreateRequest struct {
	AssignedTo    string  `json:"assigned_to"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Deadline      *string `json:"deadline"`
	AssignFileURL *string `json:"assign_file_path"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.AssignFileURL != nil && *r.AssignFileURL != "" && !validator.IsValidPDFURL(*r.AssignFileURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "assign_file_path",
			Message: "must be a valid PDF URL",
		})
	}

	if r.FileHeader != nil && r.FileHeader.Header.Get("Content-Type") != "application/pdf" {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "only PDF files are allowed",
		})
	}

	if r.Deadline != nil && *r.Deadline != "" {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitRequest struct {
	TaskID string `json:"task_id"`
	UserID string `json:"-"`

	SubmitFileURL *string               `json:"submit_file_path"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}
	if !validator.IsInSlice(r.Status, WritableStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Assigned, Completed, Progress",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID               string  `json:"id"`
	AssignedTo       string  `json:"assigned_to"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Deadline         *string `json:"deadline,omitempty"`
	Status           Status  `json:"status"`
	AssignFileURL    *string `json:"assign_file_path,omitempty"`
	AssignFileName   *string `json:"assign_file,omitempty"`
	AssignFileStored *string `json:"assign_file_stored,omitempty"`
	SubmitDate       *string `json:"submit_date,omitempty"`
	SubmitFileURL    *string `json:"submit_file_path,omitempty"`
	SubmitFile       *string `json:"submit_file,omitempty"`
	CreatedAt        string  `json:"created_at"`
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	ProfileImage     *string `json:"profile_image,omitempty"`
}

func ToTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:               t.ID,
		AssignedTo:       t.AssignedTo,
		Name:             t.Name,
		Description:      t.Description,
		Status:           t.Status,
		AssignFileURL:    t.AssignFileURL,
		AssignFileName:   t.AssignFileName,
		AssignFileStored: t.AssignFileStored,
		SubmitFileURL:    t.SubmitFileURL,
		SubmitFile:       t.SubmitFile,
		CreatedAt:        t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		Email:            t.Email,
		ProfileImage:     t.ProfileImage,
	}
	if t.Deadline != nil {
		s := t.Deadline.Format("2006-01-02")
		resp.Deadline = &s
	}
	if t.SubmitDate != nil {
		s := t.SubmitDate.Format("2006-01-02")
		resp.SubmitDate = &s
	}
	return resp
}

func ToTaskResponses(list []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTaskResponse(t))
	}
	return out
}
