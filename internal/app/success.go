package app

import "github.com/Veraticus/acefi/internal/model"

// Success congratulates the user after sign-up.
type Success struct {
	nav      *Navigator
	userName string
}

// NewSuccess reads the user name from route.
func NewSuccess(nav *Navigator, route model.Route) *Success {
	return &Success{nav: nav, userName: route.UserName}
}

// UserName returns the name the screen greets.
func (s *Success) UserName() string {
	return s.userName
}

// Title is the greeting line.
func (s *Success) Title() string {
	return "Welcome, " + s.userName + "!"
}

// Continue makes Home the only route so the user cannot go back into
// sign-up.
func (s *Success) Continue() {
	s.nav.Reset(model.Route{Name: model.RouteHome})
}
