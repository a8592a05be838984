package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
)

type result[T any] struct {
	data T
	err  error
}

// Run executes collect under its own deadline and classifies the
// outcome. The collect function receives a context that is canceled
// when the deadline passes; if it does not return in time the
// in-flight work is abandoned and the probe reports OutcomeTimeout,
// so a stuck probe can never stall the cycle it runs in.
func Run[T any](ctx context.Context, timeout time.Duration, collect func(context.Context) (T, error)) (T, Outcome, error) {
	var zero T

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan result[T], 1)
	go func() {
		data, err := collect(cctx)
		ch <- result[T]{data: data, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) && errors.Is(cctx.Err(), context.DeadlineExceeded) {
				return zero, OutcomeTimeout, timeoutError(timeout, res.err)
			}
			return zero, OutcomeUnavailable, res.err
		}
		return res.data, OutcomeOK, nil
	case <-cctx.Done():
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return zero, OutcomeTimeout, timeoutError(timeout, cctx.Err())
		}
		return zero, OutcomeUnavailable, cctx.Err()
	}
}

func timeoutError(timeout time.Duration, cause error) error {
	return apperrors.Wrap(apperrors.ErrCodeTimeout, fmt.Sprintf("probe timed out after %s", timeout), cause)
}
