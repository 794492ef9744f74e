package jobrole

import "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"

type CreateJobRoleRequest struct {
	Name string `json:"job_role_name"`
}

func (r *CreateJobRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_role_name",
			Message: "job role name is required",
		})
	} else if validator.IsNumeric(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_role_name",
			Message: "job role name cannot contain only numbers",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "job_role_name",
			Message: "job role name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRoleRequest struct {
	ID   string `json:"-"`
	Name string `json:"job_role_name"`
}

func (r *UpdateJobRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_role_name",
			Message: "job role name is required",
		})
	} else if validator.IsNumeric(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_role_name",
			Message: "job role name cannot contain only numbers",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type JobRoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"job_role_name"`
}
