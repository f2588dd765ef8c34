package content

import "context"

// CourseFilter narrows course listings. Zero value lists everything.
type CourseFilter struct {
	Status       string
	FeaturedOnly bool
	Limit        int
}

// NewsFilter narrows news listings. Zero value lists everything.
type NewsFilter struct {
	PublishedOnly bool
	Limit         int
}

// Store describes the persistence operations the catalog consumes.
type Store interface {
	Courses(ctx context.Context) CourseStore
	News(ctx context.Context) NewsStore
}

// CourseStore manages course records.
type CourseStore interface {
	Create(ctx context.Context, c *Course) error
	List(ctx context.Context, f CourseFilter) ([]Course, error)
	Count(ctx context.Context) (int64, error)
}

// NewsStore manages news records.
type NewsStore interface {
	Create(ctx context.Context, n *News) error
	List(ctx context.Context, f NewsFilter) ([]News, error)
	Count(ctx context.Context) (int64, error)
}
