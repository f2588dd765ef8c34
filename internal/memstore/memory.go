// Package memstore implements in-memory account and catalog stores for
// development and tests. Uniqueness rules match the SQL schema: usernames
// are unique within each account class, user emails are unique.
package memstore

import (
	"context"
	"sync"
	"time"

	"eduportal.org/internal/auth"
	"eduportal.org/internal/content"
)

// Memory holds every record behind a single mutex.
type Memory struct {
	mu      sync.Mutex
	users   []auth.User
	admins  []auth.Admin
	courses []content.Course
	news    []content.News

	userID   int64
	adminID  int64
	courseID int64
	newsID   int64
}

func New() *Memory {
	return &Memory{}
}

var (
	_ auth.Store    = (*Memory)(nil)
	_ content.Store = (*Memory)(nil)
)

func (m *Memory) Users(ctx context.Context) auth.UserStore        { return (*memUsers)(m) }
func (m *Memory) Admins(ctx context.Context) auth.AdminStore      { return (*memAdmins)(m) }
func (m *Memory) Courses(ctx context.Context) content.CourseStore { return (*memCourses)(m) }
func (m *Memory) News(ctx context.Context) content.NewsStore      { return (*memNews)(m) }

// Users -----------------------------------------------------------------

type memUsers Memory

func (m *memUsers) Create(ctx context.Context, u *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return auth.ErrAlreadyExists
		}
	}
	m.userID++
	u.ID = m.userID
	u.CreatedAt = time.Now().UTC()
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (m *memUsers) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

// Admins ----------------------------------------------------------------

type memAdmins Memory

func (m *memAdmins) Create(ctx context.Context, a *auth.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.admins {
		if existing.Username == a.Username {
			return auth.ErrAlreadyExists
		}
	}
	m.adminID++
	a.ID = m.adminID
	a.CreatedAt = time.Now().UTC()
	m.admins = append(m.admins, *a)
	return nil
}

func (m *memAdmins) FindByUsername(ctx context.Context, username string) (*auth.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Username == username {
			out := a
			return &out, nil
		}
	}
	return nil, auth.ErrNotFound
}

// Courses ---------------------------------------------------------------

type memCourses Memory

func (m *memCourses) Create(ctx context.Context, c *content.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.Status == "" {
		c.Status = content.CourseStatusActive
	}
	m.courseID++
	c.ID = m.courseID
	m.courses = append(m.courses, *c)
	return nil
}

func (m *memCourses) List(ctx context.Context, f content.CourseFilter) ([]content.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []content.Course
	for _, c := range m.courses {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.FeaturedOnly && !c.Featured {
			continue
		}
		out = append(out, c)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (m *memCourses) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.courses)), nil
}

// News ------------------------------------------------------------------

type memNews Memory

func (m *memNews) Create(ctx context.Context, n *content.News) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newsID++
	n.ID = m.newsID
	m.news = append(m.news, *n)
	return nil
}

func (m *memNews) List(ctx context.Context, f content.NewsFilter) ([]content.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []content.News
	for _, n := range m.news {
		if f.PublishedOnly && !n.Published {
			continue
		}
		out = append(out, n)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (m *memNews) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.news)), nil
}
