// Package club provides typed services for the Arctic Wolves backend
// resource endpoints: authentication, training sessions, athletes, drills,
// practice plans, evaluations, messaging, teams, and dashboard data.
//
// Services are thin wrappers over the core/apiclient gateway. Create the
// aggregate Client once and share it:
//
//	api, err := apiclient.New(cfg.BaseURL, apiclient.WithTokenSource(store))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	c := club.New(api)
//
//	sessions, err := c.Sessions.List(ctx)
//	athlete, err := c.Athletes.Get(ctx, 7)
//
// The AuthService adapts the backend's login endpoints (which return a flat
// shape with an api_key field) to the session.AuthAPI contract consumed by
// the session manager:
//
//	mgr, err := session.New(c.Auth, store)
package club
