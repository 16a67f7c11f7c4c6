package navigation

// Route names
// Every page of the shell is declared here so guards and redirects never use string literals
const (
	RouteHome       = "home"
	RouteLogin      = "login"
	RouteSignup     = "signup"
	RouteSearch     = "search"
	RouteSummary    = "summary"
	RouteChat       = "chat"
	RouteStudyCards = "study-cards"
	RouteStats      = "stats"
	RouteResources  = "resources"
	RouteContact    = "contact"
)

// RedirectQueryParam carries the originally requested full path to the login page
const RedirectQueryParam = "redirect"

// Route describes one page. Path uses gorilla/mux syntax ("/summary/{id}").
type Route struct {
	Name string
	Path string
	// OptionalTail makes the final path segment optional, so "/summary/{id}" also matches "/summary".
	OptionalTail bool
	// RequiresAuth gates the route behind a signed-in session. The zero value is a public route.
	RequiresAuth bool
}

// DefaultRoutes returns the shell's page table
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Path: "/"},
		{Name: RouteLogin, Path: "/login"},
		{Name: RouteSignup, Path: "/signup"},
		{Name: RouteSearch, Path: "/search"},
		{Name: RouteSummary, Path: "/summary/{id}", OptionalTail: true},
		{Name: RouteChat, Path: "/chat"},
		{Name: RouteStudyCards, Path: "/study-cards/{id}", OptionalTail: true},
		{Name: RouteStats, Path: "/stats"},
		{Name: RouteResources, Path: "/resources", RequiresAuth: true},
		{Name: RouteContact, Path: "/contact"},
	}
}
