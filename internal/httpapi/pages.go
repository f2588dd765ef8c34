package httpapi

import (
	"net/http"

	"eduportal.org/internal/web"
)

const (
	indexCourseLimit = 3
	indexNewsLimit   = 3
)

func (a *API) handleIndex(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything else under it is a miss.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	courses, err := a.catalog.FeaturedCourses(r.Context(), indexCourseLimit)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	news, err := a.catalog.PublishedNews(r.Context(), indexNewsLimit)
	if err != nil {
		a.renderError(w, r, err)
		return
	}

	a.renderPage(w, r, "index", web.IndexData{Courses: courses, News: news})
}

func (a *API) handleCoursesPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	courses, err := a.catalog.ActiveCourses(r.Context())
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	a.renderPage(w, r, "courses", web.CoursesData{Courses: courses})
}

func (a *API) handleAboutPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	a.renderPage(w, r, "about", nil)
}

func (a *API) handleContactPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	a.renderPage(w, r, "contact", nil)
}

// pageHandler serves a static page that needs no data.
func (a *API) pageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		a.renderPage(w, r, name, nil)
	}
}

func (a *API) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := a.pages.Render(w, name, data); err != nil {
		a.renderError(w, r, err)
	}
}

func (a *API) renderError(w http.ResponseWriter, r *http.Request, err error) {
	// Pages get a plain error; the JSON envelope is for the API only.
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
