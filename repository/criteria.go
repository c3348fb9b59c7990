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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomoncle/contact/criteria"
	"github.com/tomoncle/contact/database"
	"github.com/tomoncle/contact/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// ErrUnknownSort is returned when an Order names a column T does not have.
var ErrUnknownSort = errors.New("unknown sort attribute")

// DefaultOrder applies when a search asks for no ordering.
var DefaultOrder = []types.Order{types.Desc("id")}

func (r *baseRepositoryImpl[T]) compile(c criteria.Criteria) (*criteria.Predicate, error) {
	table := r.Table()
	pred, err := criteria.Compile(c, table, r.db.Dialect().Name())
	if err != nil {
		database.GetLogger().Warn("Criteria compile failed", "table", table.Name, "error", err)
		return nil, err
	}
	return pred, nil
}

func (r *baseRepositoryImpl[T]) order(q *bun.SelectQuery, orders []types.Order) (*bun.SelectQuery, error) {
	table := r.Table()
	for _, o := range orders {
		field, ok := table.FieldMap[o.Field]
		if !ok || !o.Direction.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSort, o.Field)
		}
		col := schema.Safe(string(table.SQLAlias) + "." + string(field.SQLName))
		q = q.OrderExpr("? "+o.Direction.String(), col)
	}
	return q, nil
}

func (r *baseRepositoryImpl[T]) FindByCriteria(ctx context.Context, c criteria.Criteria, orders ...types.Order) ([]*T, error) {
	pred, err := r.compile(c)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		orders = DefaultOrder
	}
	var entities []*T
	query, err := r.order(pred.Apply(r.db.NewSelect().Model(&entities)), orders)
	if err != nil {
		return nil, err
	}
	if err = query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) CountByCriteria(ctx context.Context, c criteria.Criteria) (int, error) {
	pred, err := r.compile(c)
	if err != nil {
		return 0, err
	}
	return pred.Apply(r.db.NewSelect().Model((*T)(nil))).Count(ctx)
}

func (r *baseRepositoryImpl[T]) PageByCriteria(ctx context.Context, c criteria.Criteria, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	if pageRequest == nil {
		pageRequest = types.NewDefaultPageRequest(1, types.DefaultPageSize)
	}
	pred, err := r.compile(c)
	if err != nil {
		return nil, err
	}

	var entities []*T
	query, err := r.order(pred.Apply(r.db.NewSelect().Model(&entities)), pageRequest.GetOrders(DefaultOrder...))
	if err != nil {
		return nil, err
	}

	pagination := types.NewDefaultPagination[T](pageRequest.GetPage(), pageRequest.GetPageSize())
	total, err := pred.Apply(r.db.NewSelect().Model((*T)(nil))).Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return pagination, nil
	}
	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	if entities != nil {
		pagination.Items = entities
	}
	return pagination, nil
}
