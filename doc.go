// Package freeconnect is a Go client for the FreeConnect freelance
// marketplace API: session management, role-gated navigation guards, and
// typed access to the marketplace resources.
//
// Session handling:
//   - CredentialStore persists the bearer token and the cached user profile
//     across restarts. Implementations exist for a durable sqlite-backed
//     store (store package), an in-memory store, and a no-op store for
//     execution contexts without durable storage.
//   - SessionBroadcaster holds the current Session and fans out every change
//     to subscribers so independent consumers (prompt, views, guards) stay in
//     sync without polling.
//   - Authenticator performs login, register, and logout against the backend
//     and is the only component that mutates the store and the broadcaster.
//
// Requests:
//   - BearerTransport decorates an http.RoundTripper and attaches the stored
//     bearer token to outgoing requests. Client wires it into every resource
//     service (projects, tasks, proposals, users, reviews, transactions,
//     skills, notifications, invoices, admin).
//
// Access control:
//   - Guard evaluates AccessRules before a gated view runs. A rule with an
//     empty role allow-list admits any authenticated session; otherwise the
//     user's role must be on the list. Denials carry the login route as the
//     redirect target.
package freeconnect
