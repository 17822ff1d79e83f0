package pagequery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/samber/lo"
)

var _decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// PageRequest is intended for API payloads and query strings. For JSON
// payloads, inline it:
//
//	type MyFilter struct {
//	    Paging PageRequest `json:",inline"`
//	}
type PageRequest struct {
	// Limit - page size. Zero disables paging.
	Limit int `json:"limit" schema:"limit"`
	// Page - 1-based page number. Zero disables paging.
	Page int `json:"page" schema:"page"`
	// Sort - list of "column asc|desc" strings; a single entry may hold
	// several comma-separated orderings.
	Sort []string `json:"sort,omitempty" schema:"sort"`
}

// DecodePageRequest decodes query string values such as
// "?limit=10&page=2&sort=age desc,name asc" into a PageRequest.
func DecodePageRequest(values url.Values) (PageRequest, error) {
	var req PageRequest
	if err := _decoder.Decode(&req, values); err != nil {
		return PageRequest{}, fmt.Errorf("failed to decode page request: %w", err)
	}

	return req, nil
}

// Normalize clamps the request the way Execute expects it:
//   - Limit 0 or NoLimit disables paging (Limit and Page are zeroed);
//   - otherwise Limit goes through NormalizeLimit and Page through
//     NormalizePage.
func (r PageRequest) Normalize() PageRequest {
	if r.Limit == 0 || r.Limit == NoLimit {
		r.Limit, r.Page = 0, 0
		return r
	}

	r.Limit = NormalizeLimit(r.Limit)
	r.Page = NormalizePage(r.Page)

	return r
}

// Orderings parses Sort with ParseSort, resolving aliases via columnMapping.
// Pass the result to Builder.WithRequestSort so that the requested orderings
// replace the default one.
func (r PageRequest) Orderings(columnMapping ColumnMapping) (Orderings, error) {
	sort := lo.FlatMap(r.Sort, func(item string, _ int) []string {
		return lo.Filter(strings.Split(item, ","), func(part string, _ int) bool {
			return strings.TrimSpace(part) != ""
		})
	})

	return ParseSort(sort, columnMapping)
}
