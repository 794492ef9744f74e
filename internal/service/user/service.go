package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/auth"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	// GetProfile returns one user's profile.
	GetProfile(ctx context.Context, id string) (user.ProfileResponse, error)

	// UpdateProfile edits a profile after verifying the current password.
	UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error)

	// List returns users, optionally filtered by active state. Admin only.
	List(ctx context.Context, active *bool) ([]user.ProfileResponse, error)

	// SetStatus toggles a user's active flag. Admin only.
	SetStatus(ctx context.Context, req user.UpdateStatusRequest) error

	// Delete removes an account. Admin only.
	Delete(ctx context.Context, id string) error
}

type userServiceImpl struct {
	userRepo    user.Repository
	teamRepo    team.TeamRepository
	jobRoleRepo jobrole.JobRoleRepository
	fileService file.FileService
}

func NewUserService(
	userRepo user.Repository,
	teamRepo team.TeamRepository,
	jobRoleRepo jobrole.JobRoleRepository,
	fileService file.FileService,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		jobRoleRepo: jobRoleRepo,
		fileService: fileService,
	}
}

// GetProfile implements UserService.
func (s *userServiceImpl) GetProfile(ctx context.Context, id string) (user.ProfileResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	s.resolveNames(ctx, &found)

	return user.ToProfileResponse(found), nil
}

// UpdateProfile implements UserService.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	found, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	// Edits require the current password.
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return user.ProfileResponse{}, auth.ErrInvalidCredentials
	}

	if req.TeamID != nil && *req.TeamID != "" {
		if _, err := s.teamRepo.GetByID(ctx, *req.TeamID); err != nil {
			if errors.Is(err, team.ErrTeamNotFound) {
				return user.ProfileResponse{}, user.ErrInvalidTeam
			}
			return user.ProfileResponse{}, err
		}
		found.TeamID = req.TeamID
	}
	if req.JobRoleID != nil && *req.JobRoleID != "" {
		if _, err := s.jobRoleRepo.GetByID(ctx, *req.JobRoleID); err != nil {
			if errors.Is(err, jobrole.ErrJobRoleNotFound) {
				return user.ProfileResponse{}, user.ErrInvalidJobRole
			}
			return user.ProfileResponse{}, err
		}
		found.JobRoleID = req.JobRoleID
	}

	if req.FirstName != nil {
		found.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		found.LastName = *req.LastName
	}
	if req.Email != nil {
		found.Email = *req.Email
	}
	if req.NIC != nil {
		found.NIC = req.NIC
	}
	if req.ContactNumber != nil {
		found.ContactNumber = req.ContactNumber
	}
	if req.University != nil {
		found.University = req.University
	}
	if req.AddressLine1 != nil {
		found.AddressLine1 = req.AddressLine1
	}
	if req.AddressLine2 != nil {
		found.AddressLine2 = req.AddressLine2
	}

	for dst, src := range map[**time.Time]*string{
		&found.DOB:             req.DOB,
		&found.InternStartDate: req.InternStartDate,
		&found.InternEndDate:   req.InternEndDate,
	} {
		if src == nil || *src == "" {
			continue
		}
		parsed, _ := validator.IsValidDate(*src)
		*dst = &parsed
	}

	if req.File != nil && req.FileHeader != nil {
		stored, err := s.fileService.UploadProfileImage(ctx, found.ID, req.File, req.FileHeader.Filename)
		if err != nil {
			return user.ProfileResponse{}, err
		}
		if found.ProfileImage != nil {
			if err := s.fileService.DeleteFile(ctx, *found.ProfileImage); err != nil {
				slog.Warn("Failed to delete replaced profile image", "user_id", found.ID, "error", err)
			}
		}
		found.ProfileImage = &stored
	}

	if err := s.userRepo.Update(ctx, found); err != nil {
		return user.ProfileResponse{}, err
	}

	s.resolveNames(ctx, &found)

	return user.ToProfileResponse(found), nil
}

// List implements UserService.
func (s *userServiceImpl) List(ctx context.Context, active *bool) ([]user.ProfileResponse, error) {
	users, err := s.userRepo.List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToProfileResponse(u))
	}
	return out, nil
}

// SetStatus implements UserService.
func (s *userServiceImpl) SetStatus(ctx context.Context, req user.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.userRepo.SetActive(ctx, req.UserID, req.Active)
}

// Delete implements UserService.
func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

// resolveNames fills the joined team and job-role names for single-record
// reads, which skip the list query's joins.
func (s *userServiceImpl) resolveNames(ctx context.Context, u *user.User) {
	if u.TeamID != nil && u.TeamName == nil {
		if t, err := s.teamRepo.GetByID(ctx, *u.TeamID); err == nil {
			u.TeamName = &t.Name
		}
	}
	if u.JobRoleID != nil && u.JobRoleName == nil {
		if j, err := s.jobRoleRepo.GetByID(ctx, *u.JobRoleID); err == nil {
			u.JobRoleName = &j.Name
		}
	}
}
