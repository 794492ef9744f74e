package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/auth"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/email"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/jwt"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Register creates an account and mints its display code. Admin only.
	Register(ctx context.Context, req auth.RegisterRequest) (user.ProfileResponse, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)

	// ChangePassword replaces a user's password by email.
	ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error

	// RequestResetCode emails a short-lived 6-digit reset code.
	RequestResetCode(ctx context.Context, req auth.RequestResetCodeRequest) error

	// VerifyResetCode checks a code without consuming it.
	VerifyResetCode(ctx context.Context, req auth.VerifyResetCodeRequest) error

	// ResetPassword sets a new password and consumes outstanding codes.
	ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error
}

type authServiceImpl struct {
	userRepo    user.Repository
	teamRepo    team.TeamRepository
	jobRoleRepo jobrole.JobRoleRepository
	resetRepo   auth.PasswordResetRepository
	jwtService  jwt.Service
	emailSvc    email.EmailService
	fileService file.FileService
}

func NewAuthService(
	userRepo user.Repository,
	teamRepo team.TeamRepository,
	jobRoleRepo jobrole.JobRoleRepository,
	resetRepo auth.PasswordResetRepository,
	jwtService jwt.Service,
	emailSvc email.EmailService,
	fileService file.FileService,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		jobRoleRepo: jobRoleRepo,
		resetRepo:   resetRepo,
		jwtService:  jwtService,
		emailSvc:    emailSvc,
		fileService: fileService,
	}
}

// Register implements AuthService.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	role := user.RoleEmployee
	if req.Role == string(user.RoleAdmin) {
		role = user.RoleAdmin
	}

	if req.TeamID != nil && *req.TeamID != "" {
		if _, err := s.teamRepo.GetByID(ctx, *req.TeamID); err != nil {
			if errors.Is(err, team.ErrTeamNotFound) {
				return user.ProfileResponse{}, user.ErrInvalidTeam
			}
			return user.ProfileResponse{}, err
		}
	}
	if req.JobRoleID != nil && *req.JobRoleID != "" {
		if _, err := s.jobRoleRepo.GetByID(ctx, *req.JobRoleID); err != nil {
			if errors.Is(err, jobrole.ErrJobRoleNotFound) {
				return user.ProfileResponse{}, user.ErrInvalidJobRole
			}
			return user.ProfileResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	newUser := user.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PasswordHash:  string(hash),
		ContactNumber: req.ContactNumber,
		NIC:           req.NIC,
		Role:          role,
		Active:        active,
		JobRoleID:     normalizeID(req.JobRoleID),
		TeamID:        normalizeID(req.TeamID),
		University:    req.University,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
	}

	for dst, src := range map[**time.Time]*string{
		&newUser.DOB:             req.DOB,
		&newUser.InternStartDate: req.InternStartDate,
		&newUser.InternEndDate:   req.InternEndDate,
	} {
		if src == nil || *src == "" {
			continue
		}
		parsed, _ := validator.IsValidDate(*src)
		*dst = &parsed
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	// The profile image upload happens after the insert so the stored path
	// can be keyed by the new user id. A failed upload does not roll the
	// account back.
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadProfileImage(ctx, created.ID, req.File, req.FileHeader.Filename)
		if err != nil {
			slog.Warn("Profile image upload failed during registration", "user_id", created.ID, "error", err)
		} else {
			created.ProfileImage = &path
			if err := s.userRepo.Update(ctx, created); err != nil {
				slog.Warn("Failed to persist profile image path", "user_id", created.ID, "error", err)
			}
		}
	}

	return user.ToProfileResponse(created), nil
}

// Login implements AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !found.Active {
		return auth.LoginResponse{}, user.ErrAccountDeactivated
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(found.ID, found.Role, found.UserCode)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		ID:        found.ID,
		Role:      string(found.Role),
		UserCode:  found.UserCode,
		FirstName: found.FirstName,
		LastName:  found.LastName,
	}, nil
}

// ChangePassword implements AuthService.
func (s *authServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.NewPassword != req.ConfirmPassword {
		return auth.ErrPasswordMismatch
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.SetPassword(ctx, found.ID, string(hash))
}

// RequestResetCode implements AuthService.
func (s *authServiceImpl) RequestResetCode(ctx context.Context, req auth.RequestResetCodeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	reset := auth.PasswordReset{
		Email:     found.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(auth.ResetCodeTTL),
	}

	if err := s.resetRepo.Replace(ctx, reset); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	expiresInMinutes := int(auth.ResetCodeTTL / time.Minute)
	if err := s.emailSvc.SendPasswordResetCode(found.Email, code, expiresInMinutes); err != nil {
		return fmt.Errorf("failed to send reset code email: %w", err)
	}

	return nil
}

// VerifyResetCode implements AuthService.
func (s *authServiceImpl) VerifyResetCode(ctx context.Context, req auth.VerifyResetCodeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	reset, err := s.resetRepo.GetByEmailAndCode(ctx, req.Email, req.Code)
	if err != nil {
		return err
	}

	if reset.Expired(time.Now()) {
		return auth.ErrInvalidResetCode
	}

	return nil
}

// ResetPassword implements AuthService. The code must have been verified in
// the step before; all outstanding codes are consumed on success.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.SetPassword(ctx, found.ID, string(hash)); err != nil {
		return err
	}

	if err := s.resetRepo.DeleteByEmail(ctx, found.Email); err != nil {
		slog.Warn("Failed to clear reset codes after password reset", "email", found.Email, "error", err)
	}

	return nil
}

func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// generateResetCode returns a zero-padded 6-digit code.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
