package postgresql

import (
	"context"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.Repository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `
	id, assigned_to, name, description, deadline, status,
	assign_file_url, assign_file_name, assign_file_stored,
	submit_date, submit_file_url, submit_file, created_at
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.AssignedTo,
		&t.Name,
		&t.Description,
		&t.Deadline,
		&t.Status,
		&t.AssignFileURL,
		&t.AssignFileName,
		&t.AssignFileStored,
		&t.SubmitDate,
		&t.SubmitFileURL,
		&t.SubmitFile,
		&t.CreatedAt,
	)
	return t, err
}

const taskWithUserQuery = `
	SELECT t.id, t.assigned_to, t.name, t.description, t.deadline, t.status,
		   t.assign_file_url, t.assign_file_name, t.assign_file_stored,
		   t.submit_date, t.submit_file_url, t.submit_file, t.created_at,
		   u.first_name, u.last_name, u.email, u.profile_image
	FROM tasks t
	JOIN users u ON u.id = t.assigned_to
`

func scanTaskRowsWithUser(rows pgx.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.AssignedTo, &t.Name, &t.Description, &t.Deadline, &t.Status,
			&t.AssignFileURL, &t.AssignFileName, &t.AssignFileStored,
			&t.SubmitDate, &t.SubmitFileURL, &t.SubmitFile, &t.CreatedAt,
			&t.FirstName, &t.LastName, &t.Email, &t.ProfileImage,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Create implements task.Repository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			assigned_to, name, description, deadline, status,
			assign_file_url, assign_file_name, assign_file_stored
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + taskColumns

	created, err := scanTask(q.QueryRow(ctx, query,
		t.AssignedTo,
		t.Name,
		t.Description,
		t.Deadline,
		t.Status,
		t.AssignFileURL,
		t.AssignFileName,
		t.AssignFileStored,
	))
	if err != nil {
		return task.Task{}, err
	}

	return created, nil
}

// GetByID implements task.Repository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	found, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}

	return found, nil
}

// GetByIDAndAssignee implements task.Repository.
func (r *taskRepositoryImpl) GetByIDAndAssignee(ctx context.Context, id, userID string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND assigned_to = $2`

	found, err := scanTask(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrNotAssignedToUser
		}
		return task.Task{}, err
	}

	return found, nil
}

// ListToday implements task.Repository.
func (r *taskRepositoryImpl) ListToday(ctx context.Context, today, tomorrow time.Time) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		taskWithUserQuery+`
		WHERE t.status = ANY($1)
		  AND ((t.deadline >= $2 AND t.deadline < $3) OR (t.created_at >= $2 AND t.created_at < $3))
		ORDER BY t.deadline ASC, t.created_at DESC`,
		openStatusList(), today, tomorrow,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTaskRowsWithUser(rows)
}

// ListOpen implements task.Repository.
func (r *taskRepositoryImpl) ListOpen(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		taskWithUserQuery+`
		WHERE t.status = ANY($1)
		ORDER BY t.created_at DESC`,
		openStatusList(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTaskRowsWithUser(rows)
}

// ListCompleted implements task.Repository.
func (r *taskRepositoryImpl) ListCompleted(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		taskWithUserQuery+`
		WHERE t.status = $1
		ORDER BY t.submit_date DESC NULLS LAST, t.deadline DESC`,
		task.StatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTaskRowsWithUser(rows)
}

// ListByAssignee implements task.Repository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, userID string, openOnly bool) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assigned_to = $1`
	args := []interface{}{userID}
	if openOnly {
		query += ` AND status = ANY($2)`
		args = append(args, []string{string(task.StatusProgress), string(task.StatusAssigned)})
	}
	query += ` ORDER BY deadline ASC NULLS LAST`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.AssignedTo, &t.Name, &t.Description, &t.Deadline, &t.Status,
			&t.AssignFileURL, &t.AssignFileName, &t.AssignFileStored,
			&t.SubmitDate, &t.SubmitFileURL, &t.SubmitFile, &t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update implements task.Repository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET name = $1, description = $2, deadline = $3, status = $4,
			assign_file_url = $5, assign_file_name = $6, assign_file_stored = $7,
			submit_date = $8, submit_file_url = $9, submit_file = $10
		WHERE id = $11
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		t.Name,
		t.Description,
		t.Deadline,
		t.Status,
		t.AssignFileURL,
		t.AssignFileName,
		t.AssignFileStored,
		t.SubmitDate,
		t.SubmitFileURL,
		t.SubmitFile,
		t.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return err
	}

	return nil
}

// UpdateStatus implements task.Repository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $1
		WHERE id = $2
		RETURNING ` + taskColumns

	updated, err := scanTask(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}

	return updated, nil
}

// Delete implements task.Repository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// CountByStatus implements task.Repository.
func (r *taskRepositoryImpl) CountByStatus(ctx context.Context, status task.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func openStatusList() []string {
	statuses := task.OpenStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
