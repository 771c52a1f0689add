package commands

import (
	"errors"
	"time"

	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrRequeueStuckOrdersCommandIsNotConstructed = errors.New(
	"requeue stuck orders command must be created via NewRequeueStuckOrdersCommand constructor")

// RequeueStuckOrdersCommand asks for every order that has been sitting in
// Processing longer than maxAge to be pushed back onto the work queue.
// Used by the periodic sweep job to recover orders whose queue entry was
// lost across a restart.
type RequeueStuckOrdersCommand struct {
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewRequeueStuckOrdersCommand creates a command with the given stuck
// threshold. maxAge must be positive.
func NewRequeueStuckOrdersCommand(maxAge time.Duration) (RequeueStuckOrdersCommand, error) {
	if maxAge <= 0 {
		return RequeueStuckOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}

	return RequeueStuckOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MaxAge returns the stuck threshold.
func (c RequeueStuckOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

// Validate checks that the command was built through the constructor.
func (c RequeueStuckOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRequeueStuckOrdersCommandIsNotConstructed)
}
