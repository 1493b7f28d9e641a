package pagination_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/pkg/apperr"
	"movies-api/pkg/pagination"
)

type sliceSource struct {
	items    []int
	countErr error
	findErr  error

	lastSkip  int
	lastLimit int
	lastSort  pagination.Sort
	calls     atomic.Int32
}

func (s *sliceSource) Count(_ context.Context, floor int) (int64, error) {
	s.calls.Add(1)
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.filter(floor))), nil
}

func (s *sliceSource) Find(_ context.Context, floor int, sort pagination.Sort, skip, limit int) ([]int, error) {
	s.calls.Add(1)
	s.lastSkip, s.lastLimit, s.lastSort = skip, limit, sort
	if s.findErr != nil {
		return nil, s.findErr
	}
	matched := s.filter(floor)
	if skip >= len(matched) {
		return nil, nil
	}
	end := minInt(skip+limit, len(matched))
	return matched[skip:end], nil
}

func (s *sliceSource) filter(floor int) []int {
	var out []int
	for _, v := range s.items {
		if v >= floor {
			out = append(out, v)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestFetchPage_LastPartialPage(t *testing.T) {
	src := &sliceSource{items: seq(25)}
	sort := pagination.Sort{{Field: "n"}}

	res, err := pagination.FetchPage[int, int](context.Background(), src, 0, sort, pagination.Request{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 20, src.lastSkip)
	assert.Equal(t, 10, src.lastLimit)
	assert.Equal(t, sort, src.lastSort)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, int64(25), res.TotalItems)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, res.Data)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestFetchPage_EmptyCollection(t *testing.T) {
	src := &sliceSource{}

	res, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Zero(t, res.TotalItems)
	assert.Zero(t, res.TotalPages)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestFetchPage_PastTheEnd(t *testing.T) {
	src := &sliceSource{items: seq(5)}

	res, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: 4, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalPages)
	assert.Empty(t, res.Data)
}

func TestFetchPage_HugePageIsEmpty(t *testing.T) {
	src := &sliceSource{items: seq(25)}

	res, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: math.MaxInt, Limit: 10})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, src.lastSkip, 0)
	assert.Empty(t, res.Data)
	assert.Equal(t, int64(25), res.TotalItems)
	assert.Zero(t, res.FirstItem())
}

type panickySource struct{ sliceSource }

func (s *panickySource) Find(context.Context, int, pagination.Sort, int, int) ([]int, error) {
	panic("slice bounds out of range")
}

func TestFetchPage_StorePanicIsStoreUnavailable(t *testing.T) {
	src := &panickySource{sliceSource{items: seq(5)}}

	_, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: 1, Limit: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "slice bounds out of range")
}

func TestFetchPage_AppliesFilterToBothReads(t *testing.T) {
	src := &sliceSource{items: seq(30)}

	res, err := pagination.FetchPage[int, int](context.Background(), src, 21, nil, pagination.Request{Page: 1, Limit: 4})
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.TotalItems)
	assert.Equal(t, []int{21, 22, 23, 24}, res.Data)
}

func TestFetchPage_NormalizesInvalidRequest(t *testing.T) {
	src := &sliceSource{items: seq(3)}

	res, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, pagination.DefaultLimit, res.Limit)
	assert.Equal(t, 0, src.lastSkip)
}

func TestFetchPage_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 57} {
		for _, limit := range []int{1, 3, 10} {
			src := &sliceSource{items: seq(n)}
			first, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: 1, Limit: limit})
			require.NoError(t, err)

			var all []int
			for page := 1; page <= first.TotalPages; page++ {
				res, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: page, Limit: limit})
				require.NoError(t, err)
				assert.LessOrEqual(t, len(res.Data), limit)
				all = append(all, res.Data...)
			}

			if n == 0 {
				assert.Empty(t, all)
				continue
			}
			assert.Equal(t, seq(n), all, "n=%d limit=%d", n, limit)
		}
	}
}

func TestFetchPage_CountFailureIsStoreUnavailable(t *testing.T) {
	cause := errors.New("connection reset")
	src := &sliceSource{items: seq(3), countErr: cause}

	_, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: 1, Limit: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestFetchPage_FindFailureIsStoreUnavailable(t *testing.T) {
	src := &sliceSource{items: seq(3), findErr: errors.New("server selection timeout")}

	_, err := pagination.FetchPage[int, int](context.Background(), src, 0, nil, pagination.Request{Page: 1, Limit: 10})

	var se *apperr.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "find", se.Op)
}

type blockingSource struct{}

func (blockingSource) Count(ctx context.Context, _ struct{}) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

func (blockingSource) Find(ctx context.Context, _ struct{}, _ pagination.Sort, _, _ int) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestFetchPage_CancelledContextAbortsBothReads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pagination.FetchPage[string, struct{}](ctx, blockingSource{}, struct{}{}, nil, pagination.Request{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, context.Canceled)
}
