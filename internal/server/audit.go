package server

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

// AuditRecorder is the observer called once per qualifying request after its
// response has been finalized. Implementations must swallow their own errors.
type AuditRecorder interface {
	RecordRequest(ctx context.Context, method, path, authHeader string)
}

// AuditOptions controls which requests get an audit record.
type AuditOptions struct {
	// ExcludePaths are matched exactly or as prefixes. Defaults to the auth
	// endpoints so unauthenticated credential-bearing calls are never logged.
	ExcludePaths []string
	// MethodsToLog defaults to the state-mutating methods; reads are never
	// logged.
	MethodsToLog []string
}

func (o AuditOptions) withDefaults() AuditOptions {
	if len(o.ExcludePaths) == 0 {
		o.ExcludePaths = []string{"/api/auth/login", "/api/auth/register"}
	}
	if len(o.MethodsToLog) == 0 {
		o.MethodsToLog = []string{"POST", "PUT", "PATCH", "DELETE"}
	}
	return o
}

// Audit observes every completed exchange and conditionally records it. It
// runs after next(c), when the handler has already written the response, so
// it can never delay or alter what the client sees. The handler's error (if
// any) is passed through untouched.
func Audit(recorder AuditRecorder, opts AuditOptions) echo.MiddlewareFunc {
	opts = opts.withDefaults()

	methods := make(map[string]struct{}, len(opts.MethodsToLog))
	for _, m := range opts.MethodsToLog {
		methods[m] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// On the error path Echo writes the response only after the
			// chain unwinds, so the record lands just before that write.
			err := next(c)

			req := c.Request()
			if _, ok := methods[req.Method]; !ok {
				return err
			}

			path := req.URL.Path
			for _, excluded := range opts.ExcludePaths {
				if path == excluded || strings.HasPrefix(path, excluded) {
					return err
				}
			}

			recorder.RecordRequest(req.Context(), req.Method, path, req.Header.Get(echo.HeaderAuthorization))
			return err
		}
	}
}
