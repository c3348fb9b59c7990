/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000

	// MaxPage bounds the one-based page number, keeping offsets in range.
	MaxPage = math.MaxInt32
)

// Direction is the sort direction of an Order.
type Direction int

const (
	DirectionAsc Direction = iota
	DirectionDesc
)

var directions = []Direction{DirectionAsc, DirectionDesc}

// ParseDirection parses "asc" or "desc" (any case).
func ParseDirection(s string) (Direction, bool) {
	return LookupEnum(directions, s)
}

func (d Direction) IsValid() bool { return d == DirectionAsc || d == DirectionDesc }

func (d Direction) Number() int {
	if !d.IsValid() {
		return IllegalValue
	}
	return int(d)
}

func (d Direction) Name() string {
	switch d {
	case DirectionAsc:
		return "asc"
	case DirectionDesc:
		return "desc"
	default:
		return IllegalName
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "ASC"
	case DirectionDesc:
		return "DESC"
	default:
		return IllegalName
	}
}

func (d Direction) Desc() string {
	switch d {
	case DirectionAsc:
		return "ascending"
	case DirectionDesc:
		return "descending"
	default:
		return IllegalDesc
	}
}

// Order sorts by one attribute of the record.
type Order struct {
	Field     string
	Direction Direction
}

// Asc orders by field ascending.
func Asc(field string) Order { return Order{Field: field, Direction: DirectionAsc} }

// Desc orders by field descending.
func Desc(field string) Order { return Order{Field: field, Direction: DirectionDesc} }

// PageRequest describes a 1-based page and its ordering.
type PageRequest struct {
	page     int
	pageSize int
	orders   []Order
}

func (p *PageRequest) GetPageSize() int {
	if p.pageSize < 1 {
		p.pageSize = DefaultPageSize
	}
	if p.pageSize > MaxPageSize {
		p.pageSize = MaxPageSize
	}
	return p.pageSize
}

func (p *PageRequest) GetPage() int {
	if p.page < 1 {
		p.page = 1
	}
	if p.page > MaxPage {
		p.page = MaxPage
	}
	return p.page
}

func (p *PageRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// GetOrders returns the requested ordering, or def when none was requested.
func (p *PageRequest) GetOrders(def ...Order) []Order {
	if len(p.orders) == 0 {
		return def
	}
	return p.orders
}

// NewPageRequest constructs a PageRequest with ordering.
func NewPageRequest(page int, pageSize int, orders ...Order) *PageRequest {
	return &PageRequest{page: page, pageSize: pageSize, orders: orders}
}

// NewDefaultPageRequest constructs a PageRequest with no explicit ordering.
func NewDefaultPageRequest(page int, pageSize int) *PageRequest {
	return NewPageRequest(page, pageSize)
}

// Pagination holds paged result items along with pagination metadata.
type Pagination[T any] struct {
	Page     int
	PageSize int
	Total    int
	Items    []*T
}

// TotalPages returns the number of pages needed to hold Total items.
func (p *Pagination[T]) TotalPages() int {
	if p.PageSize < 1 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// NewDefaultPagination constructs an empty pagination container.
func NewDefaultPagination[T any](page int, pageSize int) *Pagination[T] {
	return &Pagination[T]{page, pageSize, 0, make([]*T, 0)}
}
