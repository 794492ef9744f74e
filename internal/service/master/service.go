package master

import (
	"context"
	"fmt"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
)

type MasterService interface {
	// Team operations
	CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error)
	ListTeams(ctx context.Context) ([]team.TeamResponse, error)
	UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) (team.TeamResponse, error)
	DeleteTeam(ctx context.Context, id string) error

	// Job role operations
	CreateJobRole(ctx context.Context, req jobrole.CreateJobRoleRequest) (jobrole.JobRoleResponse, error)
	ListJobRoles(ctx context.Context) ([]jobrole.JobRoleResponse, error)
	UpdateJobRole(ctx context.Context, req jobrole.UpdateJobRoleRequest) (jobrole.JobRoleResponse, error)
	DeleteJobRole(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	teamRepo    team.TeamRepository
	jobRoleRepo jobrole.JobRoleRepository
	userRepo    user.Repository
}

func NewMasterService(
	teamRepo team.TeamRepository,
	jobRoleRepo jobrole.JobRoleRepository,
	userRepo user.Repository,
) MasterService {
	return &masterServiceImpl{
		teamRepo:    teamRepo,
		jobRoleRepo: jobRoleRepo,
		userRepo:    userRepo,
	}
}

// ==================== TEAM OPERATIONS ====================

func (s *masterServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	// Name collisions are checked case-insensitively before the insert; the
	// unique index backstops races.
	existing, err := s.teamRepo.GetByName(ctx, req.Name, "")
	if err != nil {
		return team.TeamResponse{}, err
	}
	if existing != nil {
		return team.TeamResponse{}, team.ErrTeamNameExists
	}

	created, err := s.teamRepo.Create(ctx, team.Team{Name: req.Name})
	if err != nil {
		return team.TeamResponse{}, err
	}

	return team.TeamResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	out := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, team.TeamResponse{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (s *masterServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	existing, err := s.teamRepo.GetByName(ctx, req.Name, req.ID)
	if err != nil {
		return team.TeamResponse{}, err
	}
	if existing != nil {
		return team.TeamResponse{}, team.ErrTeamNameExists
	}

	updated, err := s.teamRepo.Update(ctx, team.Team{ID: req.ID, Name: req.Name})
	if err != nil {
		return team.TeamResponse{}, err
	}

	return team.TeamResponse{ID: updated.ID, Name: updated.Name}, nil
}

func (s *masterServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	count, err := s.userRepo.CountByTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d user(s) are assigned to this team", team.ErrTeamInUse, count)
	}

	return s.teamRepo.Delete(ctx, id)
}

// ==================== JOB ROLE OPERATIONS ====================

func (s *masterServiceImpl) CreateJobRole(ctx context.Context, req jobrole.CreateJobRoleRequest) (jobrole.JobRoleResponse, error) {
	if err := req.Validate(); err != nil {
		return jobrole.JobRoleResponse{}, err
	}

	existing, err := s.jobRoleRepo.GetByName(ctx, req.Name, "")
	if err != nil {
		return jobrole.JobRoleResponse{}, err
	}
	if existing != nil {
		return jobrole.JobRoleResponse{}, jobrole.ErrJobRoleNameExists
	}

	created, err := s.jobRoleRepo.Create(ctx, jobrole.JobRole{Name: req.Name})
	if err != nil {
		return jobrole.JobRoleResponse{}, err
	}

	return jobrole.JobRoleResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) ListJobRoles(ctx context.Context) ([]jobrole.JobRoleResponse, error) {
	roles, err := s.jobRoleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}

	out := make([]jobrole.JobRoleResponse, 0, len(roles))
	for _, j := range roles {
		out = append(out, jobrole.JobRoleResponse{ID: j.ID, Name: j.Name})
	}
	return out, nil
}

func (s *masterServiceImpl) UpdateJobRole(ctx context.Context, req jobrole.UpdateJobRoleRequest) (jobrole.JobRoleResponse, error) {
	if err := req.Validate(); err != nil {
		return jobrole.JobRoleResponse{}, err
	}

	existing, err := s.jobRoleRepo.GetByName(ctx, req.Name, req.ID)
	if err != nil {
		return jobrole.JobRoleResponse{}, err
	}
	if existing != nil {
		return jobrole.JobRoleResponse{}, jobrole.ErrJobRoleNameExists
	}

	updated, err := s.jobRoleRepo.Update(ctx, jobrole.JobRole{ID: req.ID, Name: req.Name})
	if err != nil {
		return jobrole.JobRoleResponse{}, err
	}

	return jobrole.JobRoleResponse{ID: updated.ID, Name: updated.Name}, nil
}

func (s *masterServiceImpl) DeleteJobRole(ctx context.Context, id string) error {
	count, err := s.userRepo.CountByJobRole(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count job role members: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d user(s) are assigned to this job role", jobrole.ErrJobRoleInUse, count)
	}

	return s.jobRoleRepo.Delete(ctx, id)
}
