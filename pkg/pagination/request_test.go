package pagination_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"movies-api/pkg/pagination"
)

func TestPolicy_Parse(t *testing.T) {
	p := pagination.DefaultPolicy

	cases := []struct {
		name        string
		page, limit string
		want        pagination.Request
	}{
		{"missing", "", "", pagination.Request{Page: 1, Limit: 10}},
		{"valid", "3", "25", pagination.Request{Page: 3, Limit: 25}},
		{"not numbers", "abc", "x1", pagination.Request{Page: 1, Limit: 10}},
		{"zero", "0", "0", pagination.Request{Page: 1, Limit: 10}},
		{"negative", "-2", "-5", pagination.Request{Page: 1, Limit: 10}},
		{"above cap", "2", "1000", pagination.Request{Page: 2, Limit: 100}},
		{"float", "1.5", "10", pagination.Request{Page: 1, Limit: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Parse(tc.page, tc.limit))
		})
	}
}

func TestPolicy_ParseHugePage(t *testing.T) {
	maxInt := strconv.Itoa(math.MaxInt)

	req := pagination.DefaultPolicy.Parse(maxInt, "10")
	assert.Equal(t, math.MaxInt/10, req.Page)
	assert.Equal(t, 10, req.Limit)
	assert.GreaterOrEqual(t, req.Offset(), 0)

	req = pagination.Policy{DefaultLimit: 10}.Parse(maxInt, maxInt)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 0, req.Offset())

	req = pagination.DefaultPolicy.Parse(maxInt, "1")
	assert.Equal(t, math.MaxInt, req.Page)
	assert.Equal(t, math.MaxInt-1, req.Offset())

	// beyond int range is not an integer at all
	req = pagination.DefaultPolicy.Parse("99999999999999999999999", "10")
	assert.Equal(t, pagination.Request{Page: 1, Limit: 10}, req)
}

func TestPolicy_NoCap(t *testing.T) {
	p := pagination.Policy{DefaultLimit: 20, MaxLimit: 0}

	assert.Equal(t, pagination.Request{Page: 1, Limit: 5000}, p.Parse("1", "5000"))
	assert.Equal(t, pagination.Request{Page: 1, Limit: 20}, p.Parse("", ""))
}

func TestPolicy_ZeroValueUsesPackageDefault(t *testing.T) {
	var p pagination.Policy

	assert.Equal(t, pagination.Request{Page: 1, Limit: pagination.DefaultLimit}, p.Normalize(pagination.Request{}))
}

func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, 20, pagination.Request{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Request{}.Offset())
}

func TestNewResult(t *testing.T) {
	res := pagination.NewResult([]string{"a", "b", "c", "d", "e"}, pagination.Request{Page: 3, Limit: 10}, 25)

	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, int64(21), res.FirstItem())
	assert.Equal(t, int64(25), res.LastItem())
}

func TestNewResult_EmptyCollection(t *testing.T) {
	res := pagination.NewResult[string](nil, pagination.Request{Page: 1, Limit: 10}, 0)

	assert.Zero(t, res.TotalPages)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Zero(t, res.FirstItem())
	assert.Zero(t, res.LastItem())
}

func TestMap(t *testing.T) {
	res := pagination.NewResult([]int{1, 2, 3}, pagination.Request{Page: 1, Limit: 3}, 9)
	mapped := pagination.Map(res, func(n int) int { return n * 10 })

	assert.Equal(t, []int{10, 20, 30}, mapped.Data)
	assert.Equal(t, 3, mapped.TotalPages)
	assert.Equal(t, int64(9), mapped.TotalItems)
}
