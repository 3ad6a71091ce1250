// Package apiclient issues HTTP requests against the Arctic Wolves backend
// with bearer-token attachment and uniform error translation.
//
// Every backend endpoint responds with the same envelope shape:
//
//	{"success": bool, "data": ..., "error": "...", "message": "..."}
//
// The client attaches the stored bearer token (when a token source is
// configured), a JSON content type, and an X-Request-ID header to every
// outgoing call. Non-2xx responses are translated into *Error carrying the
// status code and a message extracted from the response body, falling back
// to the HTTP status text when the body is not parseable JSON. A 204
// response yields a success envelope with zero data. Requests are never
// retried; retry is a caller decision.
//
// # Usage
//
//	client, err := apiclient.New("https://api.arcticwolves.ca/v1",
//		apiclient.WithTokenSource(store),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := apiclient.Get[[]Athlete](ctx, client, "/athletes")
//	if err != nil {
//		var apiErr *apiclient.Error
//		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
//			// token expired
//		}
//	}
//
// Generic request helpers are package-level functions because Go methods
// cannot declare their own type parameters.
package apiclient
