// Package httpapi is the HTTP layer: HTML pages, the JSON account API and
// the operational endpoints, wired together behind a shared middleware chain.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"

	"eduportal.org/internal/auth"
	"eduportal.org/internal/content"
	"eduportal.org/internal/obs"
	"eduportal.org/internal/web"
)

// ReadyProbe — readiness check (DB ping when a database is attached).
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API holds every dependency of the HTTP layer.
type API struct {
	mux        *http.ServeMux
	auth       *auth.Service
	accounts   auth.Store
	catalog    *content.Service
	pages      *web.Renderer
	readyProbe ReadyProbe
	version    string

	rateBurst  int
	ratePerSec int
}

func New(rp ReadyProbe, version string, svc *auth.Service, accounts auth.Store, catalog *content.Service, pages *web.Renderer) *API {
	a := &API{
		mux:        http.NewServeMux(),
		auth:       svc,
		accounts:   accounts,
		catalog:    catalog,
		pages:      pages,
		readyProbe: rp,
		version:    version,
		rateBurst:  20,
		ratePerSec: 10,
	}

	// health/ready
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)

	// Prometheus metrics
	a.mux.Handle("/metrics", obs.Handler())

	// HTML pages
	a.mux.HandleFunc("/", a.handleIndex)
	a.mux.HandleFunc("/courses", a.handleCoursesPage)
	a.mux.HandleFunc("/about", a.handleAboutPage)
	a.mux.HandleFunc("/contact", a.handleContactPage)
	a.mux.HandleFunc("/user/login", a.pageHandler("user/login"))
	a.mux.HandleFunc("/user/register", a.pageHandler("user/register"))
	a.mux.HandleFunc("/admin/login", a.pageHandler("admin/login"))
	a.mux.Handle("/static/", web.StaticHandler())

	// account API
	a.mux.HandleFunc("/api/user/register", a.handleUserRegister)
	a.mux.HandleFunc("/api/user/login", a.handleUserLogin)
	a.mux.HandleFunc("/api/admin/login", a.handleAdminLogin)
	a.mux.Handle("/api/user/profile", RequireClass(auth.ClassUser)(http.HandlerFunc(a.handleUserProfile)))
	a.mux.Handle("/api/admin/summary", RequireClass(auth.ClassAdmin)(http.HandlerFunc(a.handleAdminSummary)))

	return a
}

// Handler returns the full middleware chain around the mux.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = RateLimit(h, a.rateBurst, a.ratePerSec)
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return obs.Instrument(h)
}
