package bootstrap

import (
	"context"
	"testing"

	"eduportal.org/internal/auth"
	"eduportal.org/internal/content"
	"eduportal.org/internal/memstore"
)

func TestEnsureAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	if err := EnsureAdmin(ctx, store, "admin", "admin123"); err != nil {
		t.Fatalf("first EnsureAdmin: %v", err)
	}
	if err := EnsureAdmin(ctx, store, "admin", "different-password"); err != nil {
		t.Fatalf("second EnsureAdmin: %v", err)
	}

	admin, err := store.Admins(ctx).FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	// The second run must not overwrite the original credential.
	if !auth.VerifyPassword("admin123", admin.PasswordHash) {
		t.Fatal("original admin password no longer verifies")
	}
	if auth.VerifyPassword("different-password", admin.PasswordHash) {
		t.Fatal("second bootstrap run must not change the password")
	}
}

func TestEnsureSampleContentSeedsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	if err := EnsureSampleContent(ctx, store); err != nil {
		t.Fatalf("EnsureSampleContent: %v", err)
	}

	courses, err := store.Courses(ctx).List(ctx, content.CourseFilter{})
	if err != nil {
		t.Fatalf("List courses: %v", err)
	}
	if len(courses) != len(sampleCourses) {
		t.Fatalf("expected %d seeded courses, got %d", len(sampleCourses), len(courses))
	}
	news, err := store.News(ctx).List(ctx, content.NewsFilter{})
	if err != nil {
		t.Fatalf("List news: %v", err)
	}
	if len(news) != len(sampleNews) {
		t.Fatalf("expected %d seeded news items, got %d", len(sampleNews), len(news))
	}
}

func TestEnsureSampleContentLeavesExistingCatalogAlone(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	existing := &content.Course{Title: "Operator Course", Status: content.CourseStatusActive}
	if err := store.Courses(ctx).Create(ctx, existing); err != nil {
		t.Fatalf("Create course: %v", err)
	}

	if err := EnsureSampleContent(ctx, store); err != nil {
		t.Fatalf("EnsureSampleContent: %v", err)
	}

	courses, err := store.Courses(ctx).List(ctx, content.CourseFilter{})
	if err != nil {
		t.Fatalf("List courses: %v", err)
	}
	if len(courses) != 1 || courses[0].Title != "Operator Course" {
		t.Fatalf("existing catalog must not be reseeded, got %+v", courses)
	}
	// News table was empty, so news seeding still applies.
	news, err := store.News(ctx).List(ctx, content.NewsFilter{})
	if err != nil {
		t.Fatalf("List news: %v", err)
	}
	if len(news) != len(sampleNews) {
		t.Fatalf("expected %d seeded news items, got %d", len(sampleNews), len(news))
	}
}
