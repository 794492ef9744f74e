package postgresql

import (
	"context"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/diary"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type diaryRepositoryImpl struct {
	db *database.DB
}

func NewDiaryRepository(db *database.DB) diary.Repository {
	return &diaryRepositoryImpl{db: db}
}

const diaryColumns = `
	id, user_id, name, description, file_path, file_link, date, time, status,
	reply_message, reply_date, replied_by, reply_file_path, reply_file_name,
	created_at, updated_at
`

func scanDiary(row pgx.Row) (diary.DailyDiary, error) {
	var d diary.DailyDiary
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Description,
		&d.FilePath,
		&d.FileLink,
		&d.Date,
		&d.Time,
		&d.Status,
		&d.ReplyMessage,
		&d.ReplyDate,
		&d.RepliedBy,
		&d.ReplyFilePath,
		&d.ReplyFileName,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Create implements diary.Repository.
func (r *diaryRepositoryImpl) Create(ctx context.Context, d diary.DailyDiary) (diary.DailyDiary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_diaries (user_id, name, description, file_path, file_link, date, time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + diaryColumns

	created, err := scanDiary(q.QueryRow(ctx, query,
		d.UserID,
		d.Name,
		d.Description,
		d.FilePath,
		d.FileLink,
		d.Date,
		d.Time,
		d.Status,
	))
	if err != nil {
		return diary.DailyDiary{}, err
	}

	return created, nil
}

// GetByID implements diary.Repository.
func (r *diaryRepositoryImpl) GetByID(ctx context.Context, id string) (diary.DailyDiary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + diaryColumns + ` FROM daily_diaries WHERE id = $1`

	found, err := scanDiary(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return diary.DailyDiary{}, diary.ErrDiaryNotFound
		}
		return diary.DailyDiary{}, err
	}

	return found, nil
}

// ListAll implements diary.Repository.
func (r *diaryRepositoryImpl) ListAll(ctx context.Context, withReplier bool) ([]diary.DailyDiary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.user_id, d.name, d.description, d.file_path, d.file_link,
			   d.date, d.time, d.status,
			   d.reply_message, d.reply_date, d.replied_by, d.reply_file_path, d.reply_file_name,
			   d.created_at, d.updated_at,
			   u.first_name, u.last_name, u.email, u.profile_image,
			   t.name AS team_name, jr.name AS job_role_name
	`
	if withReplier {
		query += `, a.first_name AS replier_first_name, a.last_name AS replier_last_name, a.email AS replier_email`
	}
	query += `
		FROM daily_diaries d
		JOIN users u ON u.id = d.user_id
		LEFT JOIN teams t ON t.id = u.team_id
		LEFT JOIN job_roles jr ON jr.id = u.job_role_id
	`
	if withReplier {
		query += ` LEFT JOIN users a ON a.id = d.replied_by`
	}
	query += ` ORDER BY d.date DESC, d.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []diary.DailyDiary
	for rows.Next() {
		var d diary.DailyDiary
		dest := []interface{}{
			&d.ID, &d.UserID, &d.Name, &d.Description, &d.FilePath, &d.FileLink,
			&d.Date, &d.Time, &d.Status,
			&d.ReplyMessage, &d.ReplyDate, &d.RepliedBy, &d.ReplyFilePath, &d.ReplyFileName,
			&d.CreatedAt, &d.UpdatedAt,
			&d.FirstName, &d.LastName, &d.Email, &d.ProfileImage,
			&d.TeamName, &d.JobRoleName,
		}
		if withReplier {
			dest = append(dest, &d.ReplierFirstName, &d.ReplierLastName, &d.ReplierEmail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}

	return diaries, rows.Err()
}

// ListByUser implements diary.Repository.
func (r *diaryRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]diary.DailyDiary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + diaryColumns + `
		FROM daily_diaries
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []diary.DailyDiary
	for rows.Next() {
		var d diary.DailyDiary
		err := rows.Scan(
			&d.ID, &d.UserID, &d.Name, &d.Description, &d.FilePath, &d.FileLink,
			&d.Date, &d.Time, &d.Status,
			&d.ReplyMessage, &d.ReplyDate, &d.RepliedBy, &d.ReplyFilePath, &d.ReplyFileName,
			&d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}

	return diaries, rows.Err()
}

// Update implements diary.Repository.
func (r *diaryRepositoryImpl) Update(ctx context.Context, d diary.DailyDiary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_diaries
		SET status = $1, reply_message = $2, reply_date = $3, replied_by = $4,
			reply_file_path = $5, reply_file_name = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		d.Status,
		d.ReplyMessage,
		d.ReplyDate,
		d.RepliedBy,
		d.ReplyFilePath,
		d.ReplyFileName,
		d.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return diary.ErrDiaryNotFound
		}
		return err
	}

	return nil
}

// Delete implements diary.Repository.
func (r *diaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM daily_diaries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return diary.ErrDiaryNotFound
	}

	return nil
}

// DeleteByUser implements diary.Repository. Entries owned by someone else
// are indistinguishable from missing ones.
func (r *diaryRepositoryImpl) DeleteByUser(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM daily_diaries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return diary.ErrDiaryNotFound
	}

	return nil
}
