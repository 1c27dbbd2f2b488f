// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the process's
// lifecycle and stopped through its shutdown hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
