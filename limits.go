package pagequery

const (
	// NoLimit disables paging: the whole dataset is returned.
	NoLimit = -1
	// MaxLimit is the largest page size NormalizeLimit lets through.
	MaxLimit = 100
	// DefaultLimit replaces a missing or non-positive page size.
	DefaultLimit = 10
)

// IsNormalizedLimitMax clamps limit into [1, maxLimit], substituting
// DefaultLimit for non-positive values. The flag reports whether limit was
// already within range.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	switch {
	case limit <= 0:
		return DefaultLimit, false
	case limit > maxLimit:
		return maxLimit, false
	default:
		return limit, true
	}
}

// NormalizeLimitMax is IsNormalizedLimitMax without the range flag.
func NormalizeLimitMax(limit int, maxLimit int) int {
	limit, _ = IsNormalizedLimitMax(limit, maxLimit)
	return limit
}

// NormalizeLimit is NormalizeLimitMax bounded by MaxLimit.
func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// NormalizePage returns page, or the first page for a non-positive value.
func NormalizePage(page int) int {
	return max(page, 1)
}
