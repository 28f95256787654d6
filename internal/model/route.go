package model

// RouteName identifies a screen.
type RouteName string

// Screens of the application.
const (
	RouteOnboarding RouteName = "Onboarding"
	RouteSignUp     RouteName = "SignUp"
	RouteSuccess    RouteName = "Success"
	RouteHome       RouteName = "Home"
)

// Route is a screen plus the parameters it was opened with. It is the only
// navigation schema; every screen reads its parameters from here.
type Route struct {
	Name RouteName
	// UserName is set for RouteSuccess.
	UserName string
}

// String implements fmt.Stringer.
func (r Route) String() string {
	if r.UserName != "" {
		return string(r.Name) + "(" + r.UserName + ")"
	}
	return string(r.Name)
}
