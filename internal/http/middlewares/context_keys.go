package middlewares

// gin context keys shared across middleware and handlers.
const (
	CtxRequestID = "request_id"

	ctxUserIDKey = "auth.userID"
)
