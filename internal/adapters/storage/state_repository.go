package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

// stateRepository implements ports.StateRepository using SQLite.
type stateRepository struct {
	db *sql.DB
}

// newStateRepository creates a new state repository.
func newStateRepository(db *sql.DB) ports.StateRepository {
	return &stateRepository{db: db}
}

// projectRow holds a project while its tasks are collected.
type projectRow struct {
	id, name, description, note string
	currentTask                 int
	commitment                  domain.TimeCommitment
	tasks                       []*domain.Task
}

// Load reads the whole state tree. Trackers come back idle.
func (r *stateRepository) Load(ctx context.Context) (*domain.App, error) {
	var currentProject int
	var view string

	err := r.db.QueryRowContext(ctx,
		`SELECT current_project, view FROM app_state WHERE id = 1`,
	).Scan(&currentProject, &view)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewApp(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load app state: %w", err)
	}

	rows, byID, err := r.loadProjects(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.loadCommitments(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.loadTasks(ctx, byID); err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(rows))
	for _, p := range rows {
		projects = append(projects, domain.RestoreProject(
			p.id, p.name, p.description, p.note, p.commitment, p.tasks, p.currentTask,
		))
	}

	return domain.RestoreApp(projects, currentProject, domain.View(view)), nil
}

func (r *stateRepository) loadProjects(ctx context.Context) ([]*projectRow, map[string]*projectRow, error) {
	query := `
		SELECT id, name, description, note, current_task
		FROM projects
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ordered []*projectRow
	byID := make(map[string]*projectRow)
	for rows.Next() {
		var p projectRow
		if err := rows.Scan(&p.id, &p.name, &p.description, &p.note, &p.currentTask); err != nil {
			return nil, nil, fmt.Errorf("failed to scan project: %w", err)
		}
		ordered = append(ordered, &p)
		byID[p.id] = &p
	}

	return ordered, byID, rows.Err()
}

func (r *stateRepository) loadCommitments(ctx context.Context, byID map[string]*projectRow) error {
	rows, err := r.db.QueryContext(ctx, `SELECT project_id, weekday, duration_ns FROM commitments`)
	if err != nil {
		return fmt.Errorf("failed to query commitments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var projectID string
		var weekday int
		var durationNs int64
		if err := rows.Scan(&projectID, &weekday, &durationNs); err != nil {
			return fmt.Errorf("failed to scan commitment: %w", err)
		}
		p, ok := byID[projectID]
		if !ok {
			continue
		}
		if err := p.commitment.Set(weekday, time.Duration(durationNs)); err != nil {
			return fmt.Errorf("invalid commitment for project %s: %w", projectID, err)
		}
	}

	return rows.Err()
}

func (r *stateRepository) loadTasks(ctx context.Context, byID map[string]*projectRow) error {
	query := `
		SELECT id, project_id, name, description, note, elapsed_ns
		FROM tasks
		ORDER BY project_id, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, projectID, name, description, note string
		var elapsedNs int64
		if err := rows.Scan(&id, &projectID, &name, &description, &note, &elapsedNs); err != nil {
			return fmt.Errorf("failed to scan task: %w", err)
		}
		p, ok := byID[projectID]
		if !ok {
			continue
		}
		p.tasks = append(p.tasks, domain.RestoreTask(id, name, description, note, time.Duration(elapsedNs)))
	}

	return rows.Err()
}

// Save replaces the stored tree with app in one transaction.
func (r *stateRepository) Save(ctx context.Context, app *domain.App) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"tasks", "commitments", "projects"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	currentProject := app.CurrentProjectIndex()
	if currentProject < 0 {
		currentProject = 0
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO app_state (id, current_project, view, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_project = excluded.current_project,
			view = excluded.view,
			updated_at = excluded.updated_at
	`, currentProject, string(app.View), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save app state: %w", err)
	}

	for pos, p := range app.Projects() {
		if err := saveProject(ctx, tx, pos, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}

func saveProject(ctx context.Context, tx *sql.Tx, pos int, p *domain.Project) error {
	currentTask := p.CurrentTaskIndex()
	if currentTask < 0 {
		currentTask = 0
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO projects (id, position, name, description, note, current_task)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, pos, p.Name, p.Description, p.Note, currentTask)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", p.ID, err)
	}

	for i, d := range p.TimeCommitment.Days() {
		if d == 0 {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO commitments (project_id, weekday, duration_ns)
			VALUES (?, ?, ?)
		`, p.ID, i+1, int64(d))
		if err != nil {
			return fmt.Errorf("failed to save commitment for project %s: %w", p.ID, err)
		}
	}

	for i, t := range p.Tasks() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, project_id, position, name, description, note, elapsed_ns)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, t.ID, p.ID, i, t.Name, t.Description, t.Note, int64(t.Elapsed()))
		if err != nil {
			return fmt.Errorf("failed to save task %s: %w", t.ID, err)
		}
	}

	return nil
}
