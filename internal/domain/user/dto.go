package user

import (
	"mime/multipart"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	UserID          string  `json:"-"`
	Password        string  `json:"password"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	DOB             *string `json:"dob"`
	NIC             *string `json:"nic"`
	ContactNumber   *string `json:"contact_number"`
	InternStartDate *string `json:"intern_start_date"`
	InternEndDate   *string `json:"intern_end_date"`
	University      *string `json:"university"`
	AddressLine1    *string `json:"address_line1"`
	AddressLine2    *string `json:"address_line2"`
	TeamID          *string `json:"team_id"`
	JobRoleID       *string `json:"job_role_id"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "current password is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if r.NIC != nil && !validator.IsValidNIC(*r.NIC) {
		errs = append(errs, validator.ValidationError{
			Field:   "nic",
			Message: "invalid nic",
		})
	}

	for field, val := range map[string]*string{
		"dob":               r.DOB,
		"intern_start_date": r.InternStartDate,
		"intern_end_date":   r.InternEndDate,
	} {
		if val == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*val); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	UserID string `json:"user_id"`
	Active bool   `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID              string  `json:"id"`
	UserCode        string  `json:"user_code"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	ContactNumber   *string `json:"contact_number,omitempty"`
	DOB             *string `json:"dob,omitempty"`
	NIC             *string `json:"nic,omitempty"`
	Role            string  `json:"role"`
	ProfileImage    *string `json:"profile_image,omitempty"`
	InternStartDate *string `json:"intern_start_date,omitempty"`
	InternEndDate   *string `json:"intern_end_date,omitempty"`
	Active          bool    `json:"active"`
	JobRoleID       *string `json:"job_role_id,omitempty"`
	JobRoleName     *string `json:"job_role_name,omitempty"`
	TeamID          *string `json:"team_id,omitempty"`
	TeamName        *string `json:"team_name,omitempty"`
	University      *string `json:"university,omitempty"`
	AddressLine1    *string `json:"address_line1,omitempty"`
	AddressLine2    *string `json:"address_line2,omitempty"`
}

// ToProfileResponse maps a user entity to its API shape, omitting the
// password hash.
func ToProfileResponse(u User) ProfileResponse {
	resp := ProfileResponse{
		ID:            u.ID,
		UserCode:      u.UserCode,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		NIC:           u.NIC,
		Role:          string(u.Role),
		ProfileImage:  u.ProfileImage,
		Active:        u.Active,
		JobRoleID:     u.JobRoleID,
		JobRoleName:   u.JobRoleName,
		TeamID:        u.TeamID,
		TeamName:      u.TeamName,
		University:    u.University,
		AddressLine1:  u.AddressLine1,
		AddressLine2:  u.AddressLine2,
	}

	if u.DOB != nil {
		s := u.DOB.Format("2006-01-02")
		resp.DOB = &s
	}
	if u.InternStartDate != nil {
		s := u.InternStartDate.Format("2006-01-02")
		resp.InternStartDate = &s
	}
	if u.InternEndDate != nil {
		s := u.InternEndDate.Format("2006-01-02")
		resp.InternEndDate = &s
	}

	return resp
}
