package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/abhisek/pathdash/internal/course"
)

const metaOverall = "overall"

// DatasetRepo persists the course table used as a dashboard data source.
type DatasetRepo interface {
	// Replace atomically swaps the stored dataset for ds.
	Replace(ctx context.Context, ds *course.Dataset) error

	// Load returns the stored dataset, or nil if no courses have been imported.
	Load(ctx context.Context) (*course.Dataset, error)
}

// datasetRepo implements DatasetRepo with raw SQL.
type datasetRepo struct {
	db *sql.DB
}

func (r *datasetRepo) Replace(ctx context.Context, ds *course.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM courses`,
		`DELETE FROM weekly_progress`,
		`DELETE FROM meta WHERE key = '` + metaOverall + `'`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear dataset: %w", err)
		}
	}

	for i, c := range ds.Courses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO courses (position, name, icon, progress, courses_completed, total_courses, featured, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, c.Name, c.Icon, c.Progress, c.CoursesCompleted, c.TotalCourses, c.Featured, string(c.Status))
		if err != nil {
			return fmt.Errorf("insert course %q: %w", c.Name, err)
		}
	}

	for i, w := range ds.Weekly {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO weekly_progress (position, week, progress) VALUES (?, ?, ?)`,
			i, w.Week, w.Progress)
		if err != nil {
			return fmt.Errorf("insert week %q: %w", w.Week, err)
		}
	}

	if ds.Overall != nil {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO meta (key, value) VALUES (?, ?)`,
			metaOverall, strconv.Itoa(*ds.Overall))
		if err != nil {
			return fmt.Errorf("save overall: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *datasetRepo) Load(ctx context.Context) (*course.Dataset, error) {
	courses, err := r.loadCourses(ctx)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}

	weekly, err := r.loadWeekly(ctx)
	if err != nil {
		return nil, err
	}

	ds := &course.Dataset{Courses: courses, Weekly: weekly}

	var raw string
	err = r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaOverall).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, fmt.Errorf("query overall: %w", err)
	default:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse overall %q: %w", raw, err)
		}
		ds.Overall = &v
	}

	return ds, nil
}

func (r *datasetRepo) loadCourses(ctx context.Context) ([]course.SkillRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, icon, progress, courses_completed, total_courses, featured, status
		 FROM courses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var out []course.SkillRecord
	for rows.Next() {
		var c course.SkillRecord
		var status string
		if err := rows.Scan(&c.Name, &c.Icon, &c.Progress, &c.CoursesCompleted, &c.TotalCourses, &c.Featured, &status); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		c.Status = course.Status(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *datasetRepo) loadWeekly(ctx context.Context) ([]course.WeekPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT week, progress FROM weekly_progress ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query weekly progress: %w", err)
	}
	defer rows.Close()

	var out []course.WeekPoint
	for rows.Next() {
		var w course.WeekPoint
		if err := rows.Scan(&w.Week, &w.Progress); err != nil {
			return nil, fmt.Errorf("scan week: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
