package freeconnect

// DefaultLoginRoute is where denied navigation attempts are redirected.
const DefaultLoginRoute = "/login"

// AccessRule is the static metadata attached to a navigable view: the roles
// allowed in. An empty allow-list admits any authenticated session.
type AccessRule struct {
	Roles []Role
}

func (r AccessRule) permits(role Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Decision is the outcome of a guard evaluation. RedirectTo is only set on
// denial.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// RequireAuth admits any authenticated session.
func RequireAuth() AccessRule {
	return AccessRule{}
}

// RequireRoles admits authenticated sessions whose role is on the list.
func RequireRoles(roles ...Role) AccessRule {
	return AccessRule{Roles: roles}
}

// RequireClient admits clients only.
func RequireClient() AccessRule { return RequireRoles(RoleClient) }

// RequireFreelancer admits freelancers only.
func RequireFreelancer() AccessRule { return RequireRoles(RoleFreelancer) }

// RequireAdmin admits admins only.
func RequireAdmin() AccessRule { return RequireRoles(RoleAdmin) }

// EvaluateSession is the guard predicate: permit iff the session carries a
// user AND the rule's allow-list is empty or contains the user's role. It is
// pure; neither the session nor any store is touched.
func EvaluateSession(session Session, rule AccessRule, loginRoute string) Decision {
	if loginRoute == "" {
		loginRoute = DefaultLoginRoute
	}
	if !session.Authenticated() {
		return Decision{Allowed: false, RedirectTo: loginRoute}
	}
	if !rule.permits(session.User.Role) {
		return Decision{Allowed: false, RedirectTo: loginRoute}
	}
	return Decision{Allowed: true}
}

// Guard evaluates access rules against the broadcaster's current Session.
// Each evaluation is independent; the guard holds no per-attempt state.
type Guard struct {
	broadcaster *SessionBroadcaster
	loginRoute  string
}

// GuardOption customizes Guard construction.
type GuardOption func(*Guard)

// WithLoginRoute overrides the redirect target for denials.
func WithLoginRoute(route string) GuardOption {
	return func(g *Guard) {
		if route != "" {
			g.loginRoute = route
		}
	}
}

// NewGuard returns a Guard reading session state from broadcaster.
func NewGuard(broadcaster *SessionBroadcaster, opts ...GuardOption) *Guard {
	g := &Guard{
		broadcaster: broadcaster,
		loginRoute:  DefaultLoginRoute,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate checks the current Session against rule.
func (g *Guard) Evaluate(rule AccessRule) Decision {
	return EvaluateSession(g.broadcaster.Current(), rule, g.loginRoute)
}

// EvaluateRoute checks the current Session against the rule registered for
// the named view. Views absent from the table are public.
func (g *Guard) EvaluateRoute(routes RouteTable, name string) Decision {
	rule, ok := routes[name]
	if !ok {
		return Decision{Allowed: true}
	}
	return g.Evaluate(rule)
}

// RouteTable maps view names to their access rules.
type RouteTable map[string]AccessRule

// DefaultRoutes mirrors the marketplace's navigation, with the same gating
// the web client applies: public browsing, role-specific project views, and
// role-gated dashboards.
func DefaultRoutes() RouteTable {
	return RouteTable{
		"profile":              RequireAuth(),
		"proposals":            RequireAuth(),
		"post-project":         RequireClient(),
		"my-projects":          RequireClient(),
		"client-dashboard":     RequireRoles(RoleClient),
		"freelancer-projects":  RequireFreelancer(),
		"freelancer-dashboard": RequireRoles(RoleFreelancer),
		"admin-dashboard":      RequireAdmin(),
	}
}
