package course

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/course"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/file"
)

type CourseService interface {
	Create(ctx context.Context, req course.UpsertRequest) (course.CourseResponse, error)
	Get(ctx context.Context, id string) (course.CourseResponse, error)
	List(ctx context.Context) ([]course.CourseResponse, error)
	Update(ctx context.Context, req course.UpsertRequest) (course.CourseResponse, error)
	Delete(ctx context.Context, id string) error
}

type courseServiceImpl struct {
	courseRepo  course.Repository
	fileService file.FileService
}

func NewCourseService(courseRepo course.Repository, fileService file.FileService) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		fileService: fileService,
	}
}

// Create implements CourseService.
func (s *courseServiceImpl) Create(ctx context.Context, req course.UpsertRequest) (course.CourseResponse, error) {
	if err := req.Validate(); err != nil {
		return course.CourseResponse{}, err
	}

	entity := course.Course{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Learn:        req.Learn,
	}

	if req.File != nil && req.FileHeader != nil {
		stored, err := s.fileService.UploadCourseImage(ctx, req.File, req.FileHeader.Filename)
		if err != nil {
			return course.CourseResponse{}, err
		}
		entity.Image = &stored
	}

	created, err := s.courseRepo.Create(ctx, entity)
	if err != nil {
		return course.CourseResponse{}, fmt.Errorf("failed to create course: %w", err)
	}

	return course.ToCourseResponse(created), nil
}

// Get implements CourseService.
func (s *courseServiceImpl) Get(ctx context.Context, id string) (course.CourseResponse, error) {
	found, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return course.CourseResponse{}, err
	}

	return course.ToCourseResponse(found), nil
}

// List implements CourseService.
func (s *courseServiceImpl) List(ctx context.Context) ([]course.CourseResponse, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return course.ToCourseResponses(courses), nil
}

// Update implements CourseService.
func (s *courseServiceImpl) Update(ctx context.Context, req course.UpsertRequest) (course.CourseResponse, error) {
	if err := req.Validate(); err != nil {
		return course.CourseResponse{}, err
	}

	found, err := s.courseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return course.CourseResponse{}, err
	}

	found.Title = req.Title
	found.Description = req.Description
	found.Requirements = req.Requirements
	found.Learn = req.Learn

	if req.File != nil && req.FileHeader != nil {
		stored, err := s.fileService.UploadCourseImage(ctx, req.File, req.FileHeader.Filename)
		if err != nil {
			return course.CourseResponse{}, err
		}
		if found.Image != nil {
			if err := s.fileService.DeleteFile(ctx, *found.Image); err != nil {
				slog.Warn("Failed to delete replaced course image", "course_id", found.ID, "error", err)
			}
		}
		found.Image = &stored
	}

	updated, err := s.courseRepo.Update(ctx, found)
	if err != nil {
		return course.CourseResponse{}, err
	}

	return course.ToCourseResponse(updated), nil
}

// Delete implements CourseService.
func (s *courseServiceImpl) Delete(ctx context.Context, id string) error {
	found, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	if found.Image != nil {
		if err := s.fileService.DeleteFile(ctx, *found.Image); err != nil {
			slog.Warn("Failed to delete course image", "course_id", id, "error", err)
		}
	}

	return nil
}
