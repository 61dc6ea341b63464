// Package routes implements auth-gated navigation. The guard is a pure
// function of the requested route and the current session snapshot, so every
// decision is synchronous and never triggers a network call.
package routes

import "github.com/Premdhumal/go-tweet-client/internal/session"

// Route names a navigable screen of the client.
type Route string

const (
	RouteLanding       Route = "landing"
	RouteLogin         Route = "login"
	RouteRegister      Route = "register"
	RouteFeed          Route = "feed"
	RouteTweetDetail   Route = "tweet_detail"
	RouteTweetCompose  Route = "tweet_compose"
	RouteTweetEdit     Route = "tweet_edit"
	RouteProfile       Route = "profile"
	RouteProfileEdit   Route = "profile_edit"
	RouteNotifications Route = "notifications"
)

// Class is the guard classification of a route.
type Class int

const (
	// Public routes render for everyone.
	Public Class = iota
	// AuthRequired routes redirect anonymous visitors to login.
	AuthRequired
	// AuthRedirect routes (login, register) redirect away when the visitor
	// is already signed in.
	AuthRedirect
)

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// Allow renders the requested route.
	Allow Decision = iota
	// ToLogin redirects to the login screen.
	ToLogin
	// ToFeed redirects to the feed.
	ToFeed
)

var classes = map[Route]Class{
	RouteLanding:       Public,
	RouteLogin:         AuthRedirect,
	RouteRegister:      AuthRedirect,
	RouteFeed:          Public,
	RouteTweetDetail:   Public,
	RouteTweetCompose:  AuthRequired,
	RouteTweetEdit:     AuthRequired,
	RouteProfile:       Public,
	RouteProfileEdit:   AuthRequired,
	RouteNotifications: AuthRequired,
}

// Classify returns the guard class of the route. Unknown routes are treated
// as public so a bad route name degrades to rendering rather than a bogus
// redirect.
func Classify(route Route) Class {
	if class, ok := classes[route]; ok {
		return class
	}
	return Public
}

// Evaluate decides a navigation attempt against the given session snapshot.
// An unresolved (unknown) session counts as anonymous, matching the client's
// offline fallback.
func Evaluate(route Route, snap session.Snapshot) Decision {
	switch Classify(route) {
	case AuthRequired:
		if !snap.Authenticated() {
			return ToLogin
		}
	case AuthRedirect:
		if snap.Authenticated() {
			return ToFeed
		}
	}
	return Allow
}
