package delivery

import "context"

// Delivery is a long-running inbound surface of the service.
type Delivery interface {
	Serve(ctx context.Context) error
}
