// Package content holds the public catalog: courses and news shown on the
// site's pages. It is thin CRUD glue around the store.
package content

import "errors"

const (
	CourseStatusActive   = "active"
	CourseStatusArchived = "archived"
)

// Course is a course offering listed in the catalog.
type Course struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Featured    bool    `json:"is_featured"`
	Status      string  `json:"status"`
}

// News is an announcement published on the site.
type News struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	Published bool   `json:"is_published"`
}

// Summary aggregates catalog counts for the admin overview.
type Summary struct {
	Courses int64 `json:"courses"`
	News    int64 `json:"news"`
}

var ErrNotFound = errors.New("content: not found")
