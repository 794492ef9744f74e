package postgresql

import (
	"context"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/course"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type courseRepositoryImpl struct {
	db *database.DB
}

func NewCourseRepository(db *database.DB) course.Repository {
	return &courseRepositoryImpl{db: db}
}

func scanCourse(row pgx.Row) (course.Course, error) {
	var c course.Course
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Requirements,
		&c.Learn,
		&c.Image,
		&c.CreatedAt,
	)
	return c, err
}

// Create implements course.Repository.
func (r *courseRepositoryImpl) Create(ctx context.Context, c course.Course) (course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO courses (title, description, requirements, learn, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, requirements, learn, image, created_at
	`

	created, err := scanCourse(q.QueryRow(ctx, query,
		c.Title,
		c.Description,
		c.Requirements,
		c.Learn,
		c.Image,
	))
	if err != nil {
		return course.Course{}, err
	}

	return created, nil
}

// GetByID implements course.Repository.
func (r *courseRepositoryImpl) GetByID(ctx context.Context, id string) (course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, requirements, learn, image, created_at
		FROM courses
		WHERE id = $1
	`

	found, err := scanCourse(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return course.Course{}, course.ErrCourseNotFound
		}
		return course.Course{}, err
	}

	return found, nil
}

// List implements course.Repository.
func (r *courseRepositoryImpl) List(ctx context.Context) ([]course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, requirements, learn, image, created_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []course.Course
	for rows.Next() {
		var c course.Course
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Requirements, &c.Learn, &c.Image, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

// Update implements course.Repository.
func (r *courseRepositoryImpl) Update(ctx context.Context, c course.Course) (course.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE courses
		SET title = $1, description = $2, requirements = $3, learn = $4, image = $5
		WHERE id = $6
		RETURNING id, title, description, requirements, learn, image, created_at
	`

	updated, err := scanCourse(q.QueryRow(ctx, query,
		c.Title,
		c.Description,
		c.Requirements,
		c.Learn,
		c.Image,
		c.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return course.Course{}, course.ErrCourseNotFound
		}
		return course.Course{}, err
	}

	return updated, nil
}

// Delete implements course.Repository.
func (r *courseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return course.ErrCourseNotFound
	}

	return nil
}
