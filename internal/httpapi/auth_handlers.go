package httpapi

import (
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"eduportal.org/internal/audit"
	"eduportal.org/internal/auth"
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// parseCredentials accepts either a JSON body or a classic form post, so the
// login pages work with and without client-side scripting.
func parseCredentials(w http.ResponseWriter, r *http.Request) (credentials, error) {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == "application/x-www-form-urlencoded" {
			if err := r.ParseForm(); err != nil {
				return credentials{}, errors.New("malformed form body")
			}
			return credentials{
				Username: r.PostFormValue("username"),
				Email:    r.PostFormValue("email"),
				Password: r.PostFormValue("password"),
			}, nil
		}
	}
	var creds credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		return credentials{}, err
	}
	return creds, nil
}

func (a *API) handleUserRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	creds, err := parseCredentials(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.auth.RegisterUser(r.Context(), creds.Username, creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAlreadyExists):
			writeError(w, r, http.StatusBadRequest, "username already exists")
		case errors.Is(err, auth.ErrInvalidInput):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "account.user.registered", map[string]any{
		"subject":       user.Username,
		"account_class": string(auth.ClassUser),
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "registration successful",
	})
}

func (a *API) handleUserLogin(w http.ResponseWriter, r *http.Request) {
	a.handleLogin(w, r, auth.ClassUser)
}

func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	a.handleLogin(w, r, auth.ClassAdmin)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request, class auth.AccountClass) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	creds, err := parseCredentials(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	username := strings.TrimSpace(creds.Username)

	var (
		token     string
		expiresAt time.Time
	)
	switch class {
	case auth.ClassAdmin:
		token, expiresAt, err = a.auth.LoginAdmin(r.Context(), username, creds.Password)
	default:
		token, expiresAt, err = a.auth.LoginUser(r.Context(), username, creds.Password)
	}
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidInput):
			// One message for a missing account and a wrong password.
			writeError(w, r, http.StatusUnauthorized, "invalid username or password")
		default:
			writeError(w, r, http.StatusInternalServerError, "login failed")
		}
		_ = audit.LogEvent(r.Context(), "auth.login.denied", map[string]any{
			"account_class": string(class),
		})
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.login.succeeded", map[string]any{
		"subject":       username,
		"account_class": string(class),
		"expires_at":    expiresAt.Format(time.RFC3339),
	})

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

func (a *API) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := a.accounts.Users(r.Context()).FindByUsername(r.Context(), identity.Username)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			// Token outlived the account.
			writeError(w, r, http.StatusNotFound, "account not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "profile lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"created_at": user.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (a *API) handleAdminSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	summary, err := a.catalog.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "summary failed")
		return
	}
	users, err := a.accounts.Users(r.Context()).Count(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "summary failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users":   users,
		"courses": summary.Courses,
		"news":    summary.News,
	})
}
