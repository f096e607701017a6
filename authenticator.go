package freeconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Authenticator performs login, register, and logout against the backend.
// It is the single writer of the CredentialStore and the
// SessionBroadcaster: on a successful login both are updated before Login
// returns, and on logout both are cleared even when the backend call fails.
type Authenticator struct {
	baseURL      string
	doer         Doer
	store        CredentialStore
	broadcaster  *SessionBroadcaster
	logger       Logger
	serverLogout bool
}

// AuthenticatorOption customizes Authenticator construction.
type AuthenticatorOption func(*Authenticator)

// WithDoer replaces the HTTP client used for auth endpoints.
func WithDoer(doer Doer) AuthenticatorOption {
	return func(a *Authenticator) {
		if doer != nil {
			a.doer = doer
		}
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(logger Logger) AuthenticatorOption {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithServerLogout makes Logout invoke POST /logout before clearing local
// state. Deployments without server-side session invalidation leave this
// off and logout stays a purely local operation.
func WithServerLogout(enabled bool) AuthenticatorOption {
	return func(a *Authenticator) {
		a.serverLogout = enabled
	}
}

// NewAuthenticator returns an Authenticator bound to the given backend base
// URL, credential store, and broadcaster.
func NewAuthenticator(baseURL string, store CredentialStore, broadcaster *SessionBroadcaster, opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		baseURL:     strings.TrimRight(baseURL, "/"),
		store:       store,
		broadcaster: broadcaster,
		logger:      defLogger{},
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.doer == nil {
		a.doer = &http.Client{
			Transport: NewBearerTransport(store, nil),
			Timeout:   30 * time.Second,
		}
	}

	return a
}

type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login exchanges credentials for a Session. Validation failures
// short-circuit before any network call. On success the credential store is
// persisted and the broadcaster notified atomically from the caller's point
// of view: by the time Login returns, store and broadcaster agree. On any
// failure local state is untouched.
func (a *Authenticator) Login(ctx context.Context, email, password string) (Session, error) {
	payload := LoginRequest{Email: email, Password: password}
	if err := payload.Validate(); err != nil {
		return Session{}, validationError(err, "invalid login request")
	}

	var out loginResponse
	if err := a.postJSON(ctx, "/login", payload, &out); err != nil {
		a.logger.Error("Login error: %s", err)
		return Session{}, err
	}

	if out.Token == "" || out.User == nil {
		return Session{}, badResponseError("login response is missing token or user")
	}

	role, ok := ParseRole(string(out.User.Role))
	if !ok {
		return Session{}, badResponseError(fmt.Sprintf("unrecognized role %q in login response", out.User.Role))
	}
	out.User.Role = role

	session := Session{Token: out.Token, User: out.User}

	a.store.SaveToken(ctx, session.Token)
	a.store.SaveUser(ctx, session.User)
	a.broadcaster.Set(session)

	a.logger.Info("Login succeeded for user %d (%s)", session.User.ID, session.User.Role)
	return session, nil
}

// Register forwards the profile to the backend. It mutates no local state on
// any outcome; a fresh account still has to log in.
func (a *Authenticator) Register(ctx context.Context, reg Registration) error {
	if err := reg.Validate(); err != nil {
		return validationError(err, "invalid registration request")
	}

	if err := a.postJSON(ctx, "/register", reg, nil); err != nil {
		a.logger.Error("Register error: %s", err)
		return err
	}

	a.logger.Info("Registered %s as %s", reg.Email, reg.Role)
	return nil
}

// Logout ends the session. When server logout is configured the backend is
// notified first, but local state is cleared unconditionally: a network
// failure never leaves a logged-out user looking logged in. The backend
// error, if any, is returned after the local teardown.
func (a *Authenticator) Logout(ctx context.Context) error {
	var serverErr error
	if a.serverLogout {
		if serverErr = a.postJSON(ctx, "/logout", struct{}{}, nil); serverErr != nil {
			a.logger.Error("Logout backend call failed, clearing local session anyway: %s", serverErr)
		}
	}

	a.store.ClearToken(ctx)
	a.store.ClearUser(ctx)
	a.broadcaster.Set(Session{})

	a.logger.Info("Logged out")
	return serverErr
}

func (a *Authenticator) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return transportError(err, "cannot encode request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return transportError(err, "cannot build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := a.doer.Do(req)
	if err != nil {
		return transportError(err, "auth request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return authError(backendMessage(res.Body, res.StatusCode), res.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return badResponseError(fmt.Sprintf("cannot decode response: %s", err))
	}
	return nil
}

// backendMessage extracts the backend's {"error": "..."} body, falling back
// to the HTTP status text.
func backendMessage(body io.Reader, status int) string {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&out); err == nil && out.Error != "" {
		return out.Error
	}
	return fmt.Sprintf("backend returned %d %s", status, http.StatusText(status))
}
