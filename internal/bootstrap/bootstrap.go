// Package bootstrap seeds the minimum records the site needs at startup.
// Every step is existence-checked so it is safe to run on each boot.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"eduportal.org/internal/auth"
	"eduportal.org/internal/content"
)

// EnsureAdmin creates the administrator account unless it already exists.
// A concurrent boot losing the insert race is treated as success.
func EnsureAdmin(ctx context.Context, store auth.Store, username, password string) error {
	admins := store.Admins(ctx)
	_, err := admins.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	err = admins.Create(ctx, &auth.Admin{Username: username, PasswordHash: hash})
	if err != nil && !errors.Is(err, auth.ErrAlreadyExists) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

var sampleCourses = []content.Course{
	{Title: "Python Programming Basics", Description: "Learn Python from scratch", Category: "Programming", Price: 199.0, Featured: true, Status: content.CourseStatusActive},
	{Title: "Frontend Web Development", Description: "Hands-on HTML, CSS and JavaScript", Category: "Programming", Price: 299.0, Status: content.CourseStatusActive},
	{Title: "Introduction to Data Analysis", Description: "Data analysis with spreadsheets and Python", Category: "Data", Price: 249.0, Status: content.CourseStatusActive},
}

var sampleNews = []content.News{
	{Title: "Academy celebrates its fifth anniversary", Content: "The academy marks five years of teaching.", Summary: "Five-year anniversary", Published: true},
	{Title: "New AI course available", Content: "An artificial intelligence course is now open for enrollment.", Summary: "AI course launched", Published: true},
}

// EnsureSampleContent inserts demo courses and news, but only into an empty
// catalog so operator-managed content is never duplicated.
func EnsureSampleContent(ctx context.Context, store content.Store) error {
	courses := store.Courses(ctx)
	n, err := courses.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if n == 0 {
		for i := range sampleCourses {
			c := sampleCourses[i]
			if err := courses.Create(ctx, &c); err != nil {
				return fmt.Errorf("seed course %q: %w", c.Title, err)
			}
		}
	}

	news := store.News(ctx)
	n, err = news.Count(ctx)
	if err != nil {
		return fmt.Errorf("count news: %w", err)
	}
	if n == 0 {
		for i := range sampleNews {
			item := sampleNews[i]
			if err := news.Create(ctx, &item); err != nil {
				return fmt.Errorf("seed news %q: %w", item.Title, err)
			}
		}
	}
	return nil
}
