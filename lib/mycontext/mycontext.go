package mycontext

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// CtxTraceContext is a context key for the trace context (used by mylog)
type CtxTraceContext struct{}

// CtxSessionToken is a context key for the remote-API session token of the
// browser session that triggered the current request
type CtxSessionToken struct{}

const sessionCookieName = "ironmind_session"

func ContextFromHTTPRequest(r *http.Request) context.Context {
	var trace string

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	traceContext := r.Header.Get("X-Cloud-Trace-Context")
	traceParts := strings.Split(traceContext, "/")

	if len(traceParts) > 0 && len(traceParts[0]) > 0 {
		trace = fmt.Sprintf("projects/%s/traces/%s", projectID, traceParts[0])
	}

	// Derive from the request context: handlers that poll must stop when the
	// client disconnects or navigates away.
	ctx := context.WithValue(r.Context(), CtxTraceContext{}, trace)

	cookie, err := r.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		ctx = context.WithValue(ctx, CtxSessionToken{}, cookie.Value)
	}

	return ctx
}

func WithSessionToken(c context.Context, token string) context.Context {
	return context.WithValue(c, CtxSessionToken{}, token)
}

func SessionToken(c context.Context) string {
	token, _ := c.Value(CtxSessionToken{}).(string)
	return token
}

func SessionCookieName() string {
	return sessionCookieName
}
