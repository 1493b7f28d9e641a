package pagination

import (
	"math"
	"strconv"
)

const (
	// DefaultPage is used when the page parameter is missing or invalid
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is missing or invalid
	DefaultLimit = 10
	// DefaultMaxLimit caps the page size unless a policy overrides it
	DefaultMaxLimit = 100
)

// Request is a normalized offset pagination request.
type Request struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1"`
}

// Offset returns the number of records to skip for this request.
func (r Request) Offset() int {
	return ComputeOffset(r.Page, r.Limit)
}

// Policy holds the defaults applied when normalizing requests.
// A MaxLimit of 0 disables the upper bound.
type Policy struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPolicy mirrors the API defaults: 10 per page, at most 100.
var DefaultPolicy = Policy{DefaultLimit: DefaultLimit, MaxLimit: DefaultMaxLimit}

// Normalize replaces non-positive values with defaults and applies the cap.
// Page is capped at MaxPage(limit) so its offset stays representable.
func (p Policy) Normalize(r Request) Request {
	defaultLimit := p.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Limit < 1 {
		r.Limit = defaultLimit
	}
	if p.MaxLimit > 0 && r.Limit > p.MaxLimit {
		r.Limit = p.MaxLimit
	}
	if maxPage := MaxPage(r.Limit); r.Page > maxPage {
		r.Page = maxPage
	}
	return r
}

// MaxPage is the highest page whose offset fits in an int.
func MaxPage(limit int) int {
	if limit < 1 {
		limit = 1
	}
	return math.MaxInt / limit
}

// Parse builds a normalized request from raw query values.
// Values that are missing, not integers or not positive fall back to defaults.
func (p Policy) Parse(page, limit string) Request {
	return p.Normalize(Request{
		Page:  parsePositive(page),
		Limit: parsePositive(limit),
	})
}

func parsePositive(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
