package pagequery

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Result holds the rows returned by Execute.
//
// MetaData is set only for paginated executions. A Result without MetaData
// marshals to JSON as a bare array of rows; a paginated one marshals as
//
//	{"data": [...], "metaData": {"totalItems": 25, "totalCurrentItems": 10, "totalPage": 3}}
type Result[T any] struct {
	// Data result elements.
	Data []T `json:"data"`
	// MetaData pagination details, nil when the query was not paginated.
	MetaData *MetaData `json:"metaData,omitempty"`
}

// MetaData describes a page within the whole dataset.
type MetaData struct {
	// TotalItems number of rows matching the filters, regardless of paging.
	TotalItems int64 `json:"totalItems"`
	// TotalCurrentItems number of rows on the returned page.
	TotalCurrentItems int `json:"totalCurrentItems"`
	// TotalPage number of pages of the requested size.
	TotalPage int64 `json:"totalPage"`
}

type pageEnvelope[T any] struct {
	Data     []T       `json:"data"`
	MetaData *MetaData `json:"metaData"`
}

// IsPaginated reports whether the result carries pagination MetaData.
func (r *Result[T]) IsPaginated() bool {
	return r != nil && r.MetaData != nil
}

// MarshalJSON - implements json.Marshaler. The value receiver lets both
// Result and *Result marshal through it.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	data := r.Data
	if data == nil {
		data = []T{}
	}

	if r.MetaData == nil {
		return json.Marshal(data)
	}

	return json.Marshal(pageEnvelope[T]{
		Data:     data,
		MetaData: r.MetaData,
	})
}

// Execute runs q against the table of T.
//
// When both limit and page are positive, it fetches rows
// ((page-1)*limit, page*limit] and counts all rows matching the filters
// concurrently, then returns them with MetaData. Otherwise it returns every
// matching row without MetaData.
//
// Errors are logged with the logger configured on db and returned as is.
func Execute[T any](ctx context.Context, db *gorm.DB, q Query[T], limit, page int) (*Result[T], error) {
	if db == nil {
		return nil, errors.New("cannot execute query: gorm db is nil")
	}

	var (
		res *Result[T]
		err error
	)
	if limit > 0 && page > 0 {
		res, err = executePage(ctx, db, q, limit, page)
	} else {
		res, err = executeAll(ctx, db, q)
	}

	if err != nil {
		db.Logger.Error(ctx, "pagequery: %T query failed: %v", *new(T), err)
		return nil, err
	}

	return res, nil
}

func executeAll[T any](ctx context.Context, db *gorm.DB, q Query[T]) (*Result[T], error) {
	var data []T
	err := q.Apply(db.WithContext(ctx).Model(new(T))).Find(&data).Error
	if err != nil {
		return nil, err
	}

	return &Result[T]{Data: data}, nil
}

func executePage[T any](ctx context.Context, db *gorm.DB, q Query[T], limit, page int) (*Result[T], error) {
	var (
		data       []T
		totalItems int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	session := db.WithContext(gCtx)

	g.Go(func() error {
		return q.Apply(session.Model(new(T))).
			Limit(limit).
			Offset(offsetForPage(limit, page)).
			Find(&data).Error
	})
	g.Go(func() error {
		return q.applyFilters(session.Model(new(T))).Count(&totalItems).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result[T]{
		Data: data,
		MetaData: &MetaData{
			TotalItems:        totalItems,
			TotalCurrentItems: len(data),
			TotalPage:         TotalPages(totalItems, limit),
		},
	}, nil
}

func offsetForPage(limit, page int) int {
	return (page - 1) * limit
}

// TotalPages returns ceil(totalItems / limit), or 0 for a non-positive limit.
func TotalPages(totalItems int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}

	return (totalItems + int64(limit) - 1) / int64(limit)
}
