package contextkeys

// Custom key type avoids collisions with other packages' context values.
type contextKey string

// RequestIDKey carries the per-request id set by the request-id middleware.
const RequestIDKey = contextKey("request_id")
