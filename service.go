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

package contact

import (
	"context"
	"sync"

	"github.com/tomoncle/contact/criteria"
	"github.com/tomoncle/contact/database"
	"github.com/tomoncle/contact/repository"
	"github.com/tomoncle/contact/types"
	"github.com/uptrace/bun"
)

type Service[T any] interface {
	// Get returns a single entity by its identifier.
	Get(ctx context.Context, id any) (*T, error)

	// GetWithTx is Get inside tx.
	GetWithTx(ctx context.Context, tx *bun.Tx, id any) (*T, error)

	// Count returns the number of entities matching c.
	Count(ctx context.Context, c criteria.Criteria) (int, error)

	// Search returns one page of entities matching c and their total.
	Search(ctx context.Context, c criteria.Criteria, page *types.PageRequest) (*types.Pagination[T], error)

	Save(ctx context.Context, model ...*T) error

	Update(ctx context.Context, model *T) error

	UpdateWithTx(ctx context.Context, tx *bun.Tx, model *T) error

	Delete(ctx context.Context, id any) error

	// RunInTx runs fn inside a transaction, committing when it returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
}

type baseServiceImpl[T any] struct {
	db   *bun.DB
	repo repository.Repository[T]
	once sync.Once
}

// NewService returns a Service backed by the global database connection,
// resolved on first use.
func NewService[T any]() Service[T] {
	return &baseServiceImpl[T]{}
}

// NewServiceWithDB returns a Service backed by db.
func NewServiceWithDB[T any](db *bun.DB) Service[T] {
	return &baseServiceImpl[T]{db: db}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() {
		if s.db == nil {
			s.db = database.GetDB()
		}
		s.repo = repository.NewRepository[T](s.db)
	})
	return s.repo
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id any) (*T, error) {
	return s.baseRepo().GetOne(ctx, id)
}

func (s *baseServiceImpl[T]) GetWithTx(ctx context.Context, tx *bun.Tx, id any) (*T, error) {
	return s.baseRepo().GetOneWithTx(ctx, tx, id)
}

func (s *baseServiceImpl[T]) Count(ctx context.Context, c criteria.Criteria) (int, error) {
	return s.baseRepo().CountByCriteria(ctx, c)
}

func (s *baseServiceImpl[T]) Search(ctx context.Context, c criteria.Criteria, page *types.PageRequest) (*types.Pagination[T], error) {
	return s.baseRepo().PageByCriteria(ctx, c, page)
}

func (s *baseServiceImpl[T]) Save(ctx context.Context, model ...*T) error {
	return s.baseRepo().Create(ctx, model...)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, model *T) error {
	return s.baseRepo().Update(ctx, model)
}

func (s *baseServiceImpl[T]) UpdateWithTx(ctx context.Context, tx *bun.Tx, model *T) error {
	return s.baseRepo().UpdateWithTx(ctx, tx, model)
}

func (s *baseServiceImpl[T]) Delete(ctx context.Context, id any) error {
	return s.baseRepo().Delete(ctx, id)
}

func (s *baseServiceImpl[T]) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return s.baseRepo().RunInTx(ctx, fn)
}
