package entity

// Route paths referenced by guard and redirect decisions.
const (
	RouteHome              = "/"
	RouteLogin             = "/login"
	RouteSignUp            = "/signup"
	RouteLogout            = "/logout"
	RouteUserDashboard     = "/dashboard"
	RouteShopDashboard     = "/shop-dashboard"
	RouteAdminDashboard    = "/admin-dashboard"
	RouteShopSetup         = "/shop-setup"
	RouteNewOrder          = "/new-order"
	RouteDashboardRedirect = "/dashboard-redirect"
)

// LandingRoute returns the dashboard path of a resolved role.
// Unknown and unassigned roles land on the user dashboard.
func LandingRoute(role Role) string {
	switch role {
	case RoleAdmin:
		return RouteAdminDashboard
	case RoleShopkeeper:
		return RouteShopDashboard
	default:
		return RouteUserDashboard
	}
}

// GuardState is the outcome of a route guard evaluation.
type GuardState string

const (
	GuardChecking   GuardState = "checking"
	GuardAuthorized GuardState = "authorized"
	GuardDenied     GuardState = "denied"
)

// NoticeKind is the presentation hint of a user-visible notice.
type NoticeKind string

const (
	NoticeDefault     NoticeKind = "default"
	NoticeDestructive NoticeKind = "destructive"
)

// Notice is a transient, user-visible message attached to a denial.
type Notice struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        NoticeKind `json:"kind"`
}

// GuardDecision is the result of authorizing a principal for a route.
type GuardDecision struct {
	State    GuardState `json:"state"`
	Redirect string     `json:"redirect,omitempty"`
	Notice   *Notice    `json:"notice,omitempty"`
	Role     Role       `json:"role,omitempty"`
}

// Authorized reports whether the route may be rendered.
func (d GuardDecision) Authorized() bool {
	return d.State == GuardAuthorized
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavLinksFor returns the navigation entries for a principal. authenticated is false
// for anonymous visitors, in which case role is ignored.
func NavLinksFor(authenticated bool, role Role) []NavLink {
	links := []NavLink{{Label: "PrintHub", Path: RouteHome}}
	if !authenticated {
		return append(links,
			NavLink{Label: "Login", Path: RouteLogin},
			NavLink{Label: "Sign Up", Path: RouteSignUp},
		)
	}

	links = append(links, NavLink{Label: "Dashboard", Path: LandingRoute(role)})
	switch role {
	case RoleShopkeeper:
		links = append(links, NavLink{Label: "Shop Setup", Path: RouteShopSetup})
	case RoleAdmin:
	default:
		links = append(links, NavLink{Label: "New Order", Path: RouteNewOrder})
	}

	return append(links, NavLink{Label: "Logout", Path: RouteLogout})
}
