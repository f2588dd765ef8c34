package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Courses(context context.Context) CourseStore { return &courseStore{db: s.db} }
func (s *PGStore) News(context context.Context) NewsStore      { return &newsStore{db: s.db} }

// Course store ---------------------------------------------------------------
type courseStore struct{ db *sql.DB }

func (s *courseStore) Create(ctx context.Context, c *Course) error {
	if c.Status == "" {
		c.Status = CourseStatusActive
	}
	row := s.db.QueryRowContext(ctx,
		`insert into courses(title, description, category, price, is_featured, status)
		 values($1,$2,$3,$4,$5,$6) returning id`,
		c.Title, c.Description, c.Category, c.Price, c.Featured, c.Status,
	)
	return row.Scan(&c.ID)
}

func (s *courseStore) List(ctx context.Context, f CourseFilter) ([]Course, error) {
	query := `select id, title, description, category, price, is_featured, status from courses`
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if f.FeaturedOnly {
		conds = append(conds, "is_featured")
	}
	if len(conds) > 0 {
		query += " where " + strings.Join(conds, " and ")
	}
	query += " order by id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" limit $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Price, &c.Featured, &c.Status); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *courseStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `select count(*) from courses`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// News store -----------------------------------------------------------------
type newsStore struct{ db *sql.DB }

func (s *newsStore) Create(ctx context.Context, n *News) error {
	row := s.db.QueryRowContext(ctx,
		`insert into news(title, content, summary, is_published)
		 values($1,$2,$3,$4) returning id`,
		n.Title, n.Content, n.Summary, n.Published,
	)
	return row.Scan(&n.ID)
}

func (s *newsStore) List(ctx context.Context, f NewsFilter) ([]News, error) {
	query := `select id, title, content, summary, is_published from news`
	var args []any
	if f.PublishedOnly {
		query += " where is_published"
	}
	query += " order by id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" limit $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []News
	for rows.Next() {
		var n News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Summary, &n.Published); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (s *newsStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `select count(*) from news`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
