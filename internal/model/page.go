package model

import "math"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is the normalized pagination window of a search.
type Page struct {
	Page   int
	Limit  int
	Offset uint64
}

// NormalizePage clamps page and limit instead of rejecting them:
// page < 1 becomes 1, limit < 1 becomes defaultLimit, limit > maxLimit becomes maxLimit,
// and page is lowered until the offset fits in an int64.
func NormalizePage(page, limit, defaultLimit, maxLimit int) Page {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// keep (page-1)*limit within a signed 64-bit OFFSET
	if maxPage := uint64(math.MaxInt64)/uint64(limit) + 1; uint64(page) > maxPage {
		page = int(maxPage)
	}
	return Page{
		Page:   page,
		Limit:  limit,
		Offset: uint64(page-1) * uint64(limit),
	}
}
