package services

import (
	"context"
	"log"
	"time"

	"github.com/Rakhulsr/go-joias/app/utils/apperror"
)

// StoreOptions bounds every store call.
type StoreOptions struct {
	Timeout     time.Duration
	ReadRetries int
	Backoff     time.Duration
}

func DefaultStoreOptions() StoreOptions {
	return StoreOptions{Timeout: 5 * time.Second, ReadRetries: 2, Backoff: 100 * time.Millisecond}
}

func (o StoreOptions) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.Timeout)
}

// write runs fn once under the store timeout.
func (o StoreOptions) write(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := o.bounded(ctx)
	defer cancel()
	return fn(ctx)
}

// read runs fn under the store timeout and repeats it while the store reports
// itself unavailable, up to ReadRetries more times.
func (o StoreOptions) read(ctx context.Context, op string, fn func(context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := o.write(ctx, fn)
		if err == nil || !apperror.Is(err, apperror.KindUnavailable) || attempt >= o.ReadRetries || ctx.Err() != nil {
			return err
		}

		log.Printf("%s: store unavailable (attempt %d/%d): %v", op, attempt+1, o.ReadRetries+1, err)
		select {
		case <-ctx.Done():
			return apperror.Unavailable(ctx.Err())
		case <-time.After(o.Backoff * time.Duration(attempt+1)):
		}
	}
}
