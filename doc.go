// Package pagequery provides a filter, sort and page-number pagination helper
// for GORM.
//
// Overview
//
// A Builder collects filter conditions, a sort specification and relation
// joins for one model type. Build turns it into an immutable Query which is
// consumed by Execute:
//   - with a positive limit and page, Execute fetches the requested page and
//     the total number of matching rows concurrently and returns a Result
//     carrying MetaData (the pagination envelope);
//   - otherwise, Execute returns every matching row and no MetaData.
//
// Key concepts
//   - Operator: comparison kinds translated into parameterized predicates.
//   - Orderings: ordered column/direction pairs, seeded with
//     DefaultSortColumn DESC.
//   - PageRequest: limit/page/sort parameters decoded from an API request.
//
// The sibling package currentuser reads the authenticated principal that
// upstream middleware attached to a request.
package pagequery
