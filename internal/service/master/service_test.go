package master

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeamRepo struct {
	teams  []team.Team
	nextID int
}

func (f *fakeTeamRepo) Create(ctx context.Context, t team.Team) (team.Team, error) {
	f.nextID++
	t.ID = fmt.Sprintf("team-%d", f.nextID)
	f.teams = append(f.teams, t)
	return t, nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id string) (team.Team, error) {
	for _, t := range f.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return team.Team{}, team.ErrTeamNotFound
}

func (f *fakeTeamRepo) GetByName(ctx context.Context, name string, excludeID string) (*team.Team, error) {
	for _, t := range f.teams {
		if strings.EqualFold(t.Name, name) && t.ID != excludeID {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, t team.Team) (team.Team, error) {
	for i := range f.teams {
		if f.teams[i].ID == t.ID {
			f.teams[i].Name = t.Name
			return f.teams[i], nil
		}
	}
	return team.Team{}, team.ErrTeamNotFound
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id string) error {
	for i, t := range f.teams {
		if t.ID == id {
			f.teams = append(f.teams[:i], f.teams[i+1:]...)
			return nil
		}
	}
	return team.ErrTeamNotFound
}

type fakeJobRoleRepo struct {
	roles  []jobrole.JobRole
	nextID int
}

func (f *fakeJobRoleRepo) Create(ctx context.Context, j jobrole.JobRole) (jobrole.JobRole, error) {
	f.nextID++
	j.ID = fmt.Sprintf("role-%d", f.nextID)
	f.roles = append(f.roles, j)
	return j, nil
}

func (f *fakeJobRoleRepo) GetByID(ctx context.Context, id string) (jobrole.JobRole, error) {
	for _, j := range f.roles {
		if j.ID == id {
			return j, nil
		}
	}
	return jobrole.JobRole{}, jobrole.ErrJobRoleNotFound
}

func (f *fakeJobRoleRepo) GetByName(ctx context.Context, name string, excludeID string) (*jobrole.JobRole, error) {
	for _, j := range f.roles {
		if strings.EqualFold(j.Name, name) && j.ID != excludeID {
			found := j
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeJobRoleRepo) List(ctx context.Context) ([]jobrole.JobRole, error) {
	return f.roles, nil
}

func (f *fakeJobRoleRepo) Update(ctx context.Context, j jobrole.JobRole) (jobrole.JobRole, error) {
	for i := range f.roles {
		if f.roles[i].ID == j.ID {
			f.roles[i].Name = j.Name
			return f.roles[i], nil
		}
	}
	return jobrole.JobRole{}, jobrole.ErrJobRoleNotFound
}

func (f *fakeJobRoleRepo) Delete(ctx context.Context, id string) error {
	for i, j := range f.roles {
		if j.ID == id {
			f.roles = append(f.roles[:i], f.roles[i+1:]...)
			return nil
		}
	}
	return jobrole.ErrJobRoleNotFound
}

// fakeMemberCounts satisfies user.Repository; only the count methods matter here.
type fakeMemberCounts struct {
	user.Repository
	teamCounts    map[string]int
	jobRoleCounts map[string]int
}

func (f *fakeMemberCounts) CountByTeam(ctx context.Context, teamID string) (int, error) {
	return f.teamCounts[teamID], nil
}

func (f *fakeMemberCounts) CountByJobRole(ctx context.Context, jobRoleID string) (int, error) {
	return f.jobRoleCounts[jobRoleID], nil
}

func newTestMasterService() (MasterService, *fakeTeamRepo, *fakeJobRoleRepo, *fakeMemberCounts) {
	teamRepo := &fakeTeamRepo{}
	jobRoleRepo := &fakeJobRoleRepo{}
	counts := &fakeMemberCounts{
		teamCounts:    map[string]int{},
		jobRoleCounts: map[string]int{},
	}
	return NewMasterService(teamRepo, jobRoleRepo, counts), teamRepo, jobRoleRepo, counts
}

func TestMasterService_CreateTeam_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestMasterService()

	resp, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Engineering"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Engineering", resp.Name)
}

func TestMasterService_CreateTeam_DuplicateNameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestMasterService()

	_, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Engineering"})
	require.NoError(t, err)

	_, err = svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "engineering"})

	assert.ErrorIs(t, err, team.ErrTeamNameExists)
}

func TestMasterService_CreateTeam_DigitsOnlyRejected(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestMasterService()

	_, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "12345"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "team_name")
}

func TestMasterService_UpdateTeam_KeepOwnName(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestMasterService()

	created, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Engineering"})
	require.NoError(t, err)

	// Renaming to its own name is not a collision.
	_, err = svc.UpdateTeam(ctx, team.UpdateTeamRequest{ID: created.ID, Name: "Engineering"})

	assert.NoError(t, err)
}

func TestMasterService_UpdateTeam_CollidesWithOther(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestMasterService()

	_, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Engineering"})
	require.NoError(t, err)
	other, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Design"})
	require.NoError(t, err)

	_, err = svc.UpdateTeam(ctx, team.UpdateTeamRequest{ID: other.ID, Name: "ENGINEERING"})

	assert.ErrorIs(t, err, team.ErrTeamNameExists)
}

func TestMasterService_DeleteTeam_BlockedWhenInUse(t *testing.T) {
	ctx := context.Background()
	svc, _, _, counts := newTestMasterService()

	created, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Engineering"})
	require.NoError(t, err)
	counts.teamCounts[created.ID] = 3

	err = svc.DeleteTeam(ctx, created.ID)

	require.ErrorIs(t, err, team.ErrTeamInUse)
	assert.Contains(t, err.Error(), "3 user(s) are assigned to this team")
}

func TestMasterService_DeleteTeam_EmptyTeam(t *testing.T) {
	ctx := context.Background()
	svc, teamRepo, _, _ := newTestMasterService()

	created, err := svc.CreateTeam(ctx, team.CreateTeamRequest{Name: "Engineering"})
	require.NoError(t, err)

	err = svc.DeleteTeam(ctx, created.ID)

	require.NoError(t, err)
	assert.Empty(t, teamRepo.teams)
}

func TestMasterService_CreateJobRole_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestMasterService()

	_, err := svc.CreateJobRole(ctx, jobrole.CreateJobRoleRequest{Name: "Backend Developer"})
	require.NoError(t, err)

	_, err = svc.CreateJobRole(ctx, jobrole.CreateJobRoleRequest{Name: "backend developer"})

	assert.ErrorIs(t, err, jobrole.ErrJobRoleNameExists)
}

func TestMasterService_DeleteJobRole_BlockedWhenInUse(t *testing.T) {
	ctx := context.Background()
	svc, _, _, counts := newTestMasterService()

	created, err := svc.CreateJobRole(ctx, jobrole.CreateJobRoleRequest{Name: "Backend Developer"})
	require.NoError(t, err)
	counts.jobRoleCounts[created.ID] = 1

	err = svc.DeleteJobRole(ctx, created.ID)

	require.ErrorIs(t, err, jobrole.ErrJobRoleInUse)
	assert.Contains(t, err.Error(), "1 user(s) are assigned to this job role")
}
