package email

import "context"

// Provider sends outbound mail. Implementations must be safe for concurrent
// use, sends happen on goroutines off the request path.
type Provider interface {
	Send(ctx context.Context, msg *Message) error
}
