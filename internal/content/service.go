package content

import "context"

// Service exposes the read operations consumed by the page and API handlers.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// FeaturedCourses lists active featured courses, up to limit.
func (s *Service) FeaturedCourses(ctx context.Context, limit int) ([]Course, error) {
	return s.store.Courses(ctx).List(ctx, CourseFilter{
		Status:       CourseStatusActive,
		FeaturedOnly: true,
		Limit:        limit,
	})
}

// ActiveCourses lists every active course.
func (s *Service) ActiveCourses(ctx context.Context) ([]Course, error) {
	return s.store.Courses(ctx).List(ctx, CourseFilter{Status: CourseStatusActive})
}

// PublishedNews lists published announcements, up to limit.
func (s *Service) PublishedNews(ctx context.Context, limit int) ([]News, error) {
	return s.store.News(ctx).List(ctx, NewsFilter{PublishedOnly: true, Limit: limit})
}

// Summary returns catalog counts for the admin overview.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	courses, err := s.store.Courses(ctx).Count(ctx)
	if err != nil {
		return Summary{}, err
	}
	news, err := s.store.News(ctx).Count(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Courses: courses, News: news}, nil
}
