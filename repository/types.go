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

	"github.com/tomoncle/contact/criteria"
	"github.com/tomoncle/contact/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// CrudRepository defines basic CRUD operations for a generic entity type.
// Lookups, updates and deletes of a missing id report database.ErrNotFound.
type CrudRepository[T any] interface {
	GetOne(ctx context.Context, id any) (*T, error)

	GetAll(ctx context.Context) ([]*T, error)

	Exists(ctx context.Context, id any) (bool, error)

	Create(ctx context.Context, entity ...*T) error

	Upsert(ctx context.Context, fields []string, duplicateKeys []string, entity ...*T) error

	Update(ctx context.Context, entity *T) error

	Delete(ctx context.Context, id any) error
}

// CriteriaRepository runs criteria searches. Fetch and count share one
// compiled predicate, so a page and its total always agree on the filter.
type CriteriaRepository[T any] interface {
	// FindByCriteria returns every match in the given order, id DESC by default.
	FindByCriteria(ctx context.Context, c criteria.Criteria, orders ...types.Order) ([]*T, error)

	// CountByCriteria returns the number of matches.
	CountByCriteria(ctx context.Context, c criteria.Criteria) (int, error)

	// PageByCriteria returns one page of matches and their total. When the
	// total is zero the fetch is skipped and Items is empty.
	PageByCriteria(ctx context.Context, c criteria.Criteria, page *types.PageRequest) (*types.Pagination[T], error)
}

// TransactionRepository defines CRUD operations executed within a transaction.
type TransactionRepository[T any] interface {
	// RunInTx runs fn inside a transaction, committing when it returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
	GetOneWithTx(ctx context.Context, tx *bun.Tx, id any) (*T, error)
	CreateWithTx(ctx context.Context, tx *bun.Tx, entity ...*T) error
	UpsertWithTx(ctx context.Context, tx *bun.Tx, fields []string, duplicateKeys []string, entity ...*T) error
	UpdateWithTx(ctx context.Context, tx *bun.Tx, entity *T) error
	DeleteWithTx(ctx context.Context, tx *bun.Tx, id any) error
}

// PageQueryRepository defines pagination over all entities.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines CRUD, criteria, pagination and transactional
// operations on the table of T.
type Repository[T any] interface {
	CrudRepository[T]
	CriteriaRepository[T]
	PageQueryRepository[T]
	TransactionRepository[T]
	Table() *schema.Table
}
