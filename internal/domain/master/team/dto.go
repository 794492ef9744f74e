package team

import "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"

type CreateTeamRequest struct {
	Name string `json:"team_name"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team name is required",
		})
	} else if validator.IsNumeric(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team name cannot contain only numbers",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTeamRequest struct {
	ID   string `json:"-"`
	Name string `json:"team_name"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team name is required",
		})
	} else if validator.IsNumeric(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team name cannot contain only numbers",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"team_name"`
}
