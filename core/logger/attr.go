package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety, following the
// principle of making zero values useful.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the SDK component emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence such as "sign_in" or "restore".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for an HTTP request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// RequestID creates an attribute for a request correlation identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// UserID creates an attribute for a backend user identifier.
func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
