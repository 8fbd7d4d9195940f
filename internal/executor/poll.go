package executor

import (
	"context"
	"time"

	"github.com/doitintl/vmcycle/internal/types"
	"github.com/pkg/errors"
)

type checkFunc func(ctx context.Context, attempt int) (bool, error)

// pollUntil runs check once, then once per interval up to attempts more times, until check reports done.
// A check error stops polling and is returned as is; running out of attempts or a done context yields types.ErrTimeout.
func pollUntil(ctx context.Context, interval time.Duration, attempts int, check checkFunc) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 0; ; attempt++ {
		done, err := check(ctx, attempt)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if attempt >= attempts {
			return errors.Wrapf(types.ErrTimeout, "target not reached after %d checks", attempt+1)
		}
		select {
		case <-ctx.Done():
			return errors.Wrapf(types.ErrTimeout, "stopped waiting after %d checks: %v", attempt+1, ctx.Err())
		case <-ticker.C:
		}
	}
}
