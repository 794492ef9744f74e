package course

import (
	"mime/multipart"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type UpsertRequest struct {
	ID           string   `json:"-"`
	Title        string   `json:"course_title"`
	Description  string   `json:"course_description"`
	Requirements []string `json:"requirements"`
	Learn        []string `json:"learn"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "course_title",
			Message: "course_title is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "course_description",
			Message: "course_description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CourseResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"course_title"`
	Description  string   `json:"course_description"`
	Requirements []string `json:"requirements"`
	Learn        []string `json:"learn"`
	Image        *string  `json:"course_image,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

func ToCourseResponse(c Course) CourseResponse {
	return CourseResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Requirements: c.Requirements,
		Learn:        c.Learn,
		Image:        c.Image,
		CreatedAt:    c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToCourseResponses(list []Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCourseResponse(c))
	}
	return out
}
