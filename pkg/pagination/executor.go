package pagination

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"movies-api/pkg/apperr"
)

// Source is the slice of a document store FetchPage needs.
type Source[T any, F any] interface {
	Count(ctx context.Context, filter F) (int64, error)
	Find(ctx context.Context, filter F, sort Sort, skip, limit int) ([]T, error)
}

// FetchPage runs the count and the bounded fetch for one page and assembles
// the result. The two reads run concurrently and are cancelled together; under
// concurrent writes the total and the window may briefly disagree.
//
// Store failures come back as *apperr.StoreError. FetchPage never retries.
func FetchPage[T any, F any](ctx context.Context, src Source[T, F], filter F, sort Sort, req Request) (*Result[T], error) {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = DefaultLimit
	}
	skip := ComputeOffset(req.Page, req.Limit)

	var (
		total int64
		items []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverStore("count", &err)
		n, err := src.Count(gctx, filter)
		if err != nil {
			return apperr.NewStoreError("count", err)
		}
		total = n
		return nil
	})
	g.Go(func() (err error) {
		defer recoverStore("find", &err)
		found, err := src.Find(gctx, filter, sort, skip, req.Limit)
		if err != nil {
			return apperr.NewStoreError("find", err)
		}
		items = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(items) > req.Limit {
		items = items[:req.Limit]
	}
	return NewResult(items, req, total), nil
}

// recoverStore turns a panic in a store read into a store error. The reads run
// on errgroup goroutines, out of reach of the HTTP recover middleware.
func recoverStore(op string, err *error) {
	if r := recover(); r != nil {
		*err = apperr.NewStoreError(op, fmt.Errorf("panic: %v", r))
	}
}
