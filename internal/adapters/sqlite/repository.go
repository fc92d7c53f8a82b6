package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

// createdAtLayout matches the millisecond UTC timestamps of the hosted store.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the SQLite database. Migrations live in ./migrations and can be
// applied with `dbmate up` or with Migrate.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps :memory: usable.
	db.SetMaxOpenConns(1)
	return &Repository{db: db, now: time.Now}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Migrate applies the up section of every embedded migration in name order.
func (r *Repository) Migrate(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := migrations.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, upSection(string(b))); err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
	}
	return nil
}

// upSection returns the statements between "-- migrate:up" and
// "-- migrate:down".
func upSection(src string) string {
	if i := strings.Index(src, "-- migrate:up"); i >= 0 {
		src = src[i+len("-- migrate:up"):]
	}
	if i := strings.Index(src, "-- migrate:down"); i >= 0 {
		src = src[:i]
	}
	return src
}

// ── Employees ─────────────────────────────────────────────────────────────────

func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, position, department, created_at
		FROM employees ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *Repository) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, position, department, created_at
		FROM employees WHERE id=?`, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	e.ID = uuid.NewString()
	e.CreatedAt = r.now().UTC().Format(createdAtLayout)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, position, department, created_at)
		VALUES (?,?,?,?,?,?)`,
		e.ID, e.Name, e.Email, e.Position, e.Department, e.CreatedAt,
	)
	return err
}

// UpdateEmployee replaces the editable fields of e.ID; CreatedAt is reloaded
// from the stored row.
func (r *Repository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name=?, email=?, position=?, department=?
		WHERE id=?`,
		e.Name, e.Email, e.Position, e.Department, e.ID,
	)
	if err != nil {
		return err
	}
	if err := affectedOne(res); err != nil {
		return err
	}
	stored, err := r.GetEmployee(ctx, e.ID)
	if err != nil {
		return err
	}
	e.CreatedAt = stored.CreatedAt
	return nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOne(res)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrRecordNotFound
	}
	return nil
}
