package freeconnect

import "net/http"

const (
	// HeaderAuthorization carries the bearer credential on outgoing requests.
	HeaderAuthorization = "Authorization"
	// AuthScheme prefixes the token in the Authorization header.
	AuthScheme = "Bearer"
)

// Doer executes HTTP requests. *http.Client satisfies it; tests substitute
// in-process fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BearerTransport decorates a RoundTripper so every outgoing request carries
// the stored bearer token.
//
// The transformation is pure per request: when the store is available and
// holds a token, a clone of the request goes out with the Authorization
// header set; otherwise the request is forwarded untouched. The caller's
// request object is never mutated and a caller-supplied Authorization header
// always wins.
type BearerTransport struct {
	// Store supplies the token. A nil or unavailable store disables
	// augmentation.
	Store CredentialStore
	// Base performs the actual round trip. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper
}

var _ http.RoundTripper = (*BearerTransport)(nil)

// NewBearerTransport wraps base with token augmentation backed by store.
func NewBearerTransport(store CredentialStore, base http.RoundTripper) *BearerTransport {
	return &BearerTransport{Store: store, Base: base}
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Store == nil || !t.Store.Available() {
		return base.RoundTrip(req)
	}
	if req.Header.Get(HeaderAuthorization) != "" {
		return base.RoundTrip(req)
	}

	token, ok := t.Store.Token(req.Context())
	if !ok {
		return base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(HeaderAuthorization, AuthScheme+" "+token)
	return base.RoundTrip(clone)
}

// RoundTripFunc adapts a function to http.RoundTripper, mirroring
// http.HandlerFunc. Tests use it to splice in-process backends under the
// BearerTransport.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
