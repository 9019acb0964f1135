package secret

import (
	"context"
	"time"
)

// DefaultStoreTimeout bounds plugin store I/O when TimeoutStore is
// constructed with a non-positive timeout.
const DefaultStoreTimeout = 5 * time.Second

// TimeoutStore bounds every potentially blocking call on a wrapped store with
// a deadline. When the deadline expires, Available reports false and Get
// reports absent instead of hanging the resolution pipeline. Writes propagate
// the context error so callers can tell a timeout from a read-only violation.
type TimeoutStore struct {
	inner   Store
	timeout time.Duration
}

// NewTimeoutStore wraps inner so each call completes within timeout.
func NewTimeoutStore(inner Store, timeout time.Duration) *TimeoutStore {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &TimeoutStore{inner: inner, timeout: timeout}
}

// Timeout returns the configured bound.
func (s *TimeoutStore) Timeout() time.Duration { return s.timeout }

// Name returns the wrapped store's name.
func (s *TimeoutStore) Name() string { return s.inner.Name() }

// Available probes the wrapped store, reporting false on timeout.
func (s *TimeoutStore) Available(ctx context.Context) bool {
	ok, err := callBounded(ctx, s.timeout, func(ctx context.Context) (bool, error) {
		return s.inner.Available(ctx), nil
	})
	return err == nil && ok
}

// Get reads from the wrapped store, reporting absent on timeout.
func (s *TimeoutStore) Get(ctx context.Context, key string) (string, bool) {
	type result struct {
		value string
		ok    bool
	}
	res, err := callBounded(ctx, s.timeout, func(ctx context.Context) (result, error) {
		v, ok := s.inner.Get(ctx, key)
		return result{v, ok}, nil
	})
	if err != nil {
		return "", false
	}
	return res.value, res.ok
}

// Has reports whether Get would succeed for key within the bound.
func (s *TimeoutStore) Has(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// Info returns a diagnostic probe for key.
func (s *TimeoutStore) Info(ctx context.Context, key string) Info {
	return infoOf(ctx, s, key)
}

// Set writes to the wrapped store within the bound.
func (s *TimeoutStore) Set(ctx context.Context, key, value string) error {
	_, err := callBounded(ctx, s.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.Set(ctx, key, value)
	})
	return err
}

// Delete deletes from the wrapped store within the bound.
func (s *TimeoutStore) Delete(ctx context.Context, key string) error {
	_, err := callBounded(ctx, s.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.Delete(ctx, key)
	})
	return err
}

// callBounded runs op under a derived deadline. The spawned goroutine is
// abandoned on timeout; op must eventually return once its context is done.
func callBounded[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := op(ctx)
		done <- outcome{v, err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

var _ Store = (*TimeoutStore)(nil)
