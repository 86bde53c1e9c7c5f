// Package workers runs the service's background jobs. Each [Worker] blocks
// in Run until its context is cancelled; [Workers] runs them side by side.
package workers

import "context"

// Worker is a background job bound to the lifetime of ctx.
type Worker interface {
	Run(ctx context.Context)
}
