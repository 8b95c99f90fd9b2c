// Package checker runs the dependency consistency checks over a loaded workspace.
package checker

import "context"

// Checker validates a workspace against its release configuration.
type Checker interface {
	Check(ctx context.Context, in Input) (Result, error)
}
