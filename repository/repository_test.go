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

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/contact/criteria"
	"github.com/tomoncle/contact/database"
	"github.com/tomoncle/contact/domain"
	"github.com/tomoncle/contact/filter"
	"github.com/tomoncle/contact/repository"
	"github.com/tomoncle/contact/types"
	"github.com/uptrace/bun"
)

func newRepo(t *testing.T) repository.Repository[domain.Contact] {
	t.Helper()
	repo, _ := newRepoWithManager(t)
	return repo
}

func newRepoWithManager(t *testing.T) (repository.Repository[domain.Contact], database.AbstractDatabaseManager) {
	t.Helper()
	manager := database.NewDatabaseManager(&database.ConnectionConfig{Type: "sqlite", DBName: ":memory:"})
	ctx := context.Background()
	require.NoError(t, manager.Connect(ctx))
	t.Cleanup(func() { _ = manager.Disconnect() })
	require.NoError(t, manager.RunMigrations(ctx))
	return repository.NewRepository[domain.Contact](manager.GetDB()), manager
}

func contact(nom string, age int) *domain.Contact {
	return &domain.Contact{
		Nom:        filter.Ptr(nom),
		Prenom:     filter.Ptr(nom),
		Age:        filter.Ptr(age),
		Address:    filter.Ptr(nom),
		Codepostal: filter.Ptr(age),
	}
}

func seed(t *testing.T, repo repository.Repository[domain.Contact], cs ...*domain.Contact) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), cs...))
	for _, c := range cs {
		require.NotZero(t, c.ID)
	}
}

func ids(cs []*domain.Contact) []int64 {
	out := make([]int64, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestCrud(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	c := contact("AAAAAAAAAA", 1)
	seed(t, repo, c)

	got, err := repo.GetOne(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAA", *got.Nom)

	ok, err := repo.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got.Nom = filter.Ptr("BBBBBBBBBB")
	got.Age = nil
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetOne(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBBBB", *got.Nom)
	assert.Nil(t, got.Age)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetOne(ctx, c.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
	ok, err = repo.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWritesOfMissingRows(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, &domain.Contact{ID: 404}), database.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 404), database.ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindByCriteriaOrdering(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	a, b, c := contact("a", 3), contact("b", 1), contact("c", 2)
	seed(t, repo, a, b, c)

	found, err := repo.FindByCriteria(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID, b.ID, a.ID}, ids(found))

	found, err = repo.FindByCriteria(ctx, &domain.ContactCriteria{}, types.Asc("age"))
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, c.ID, a.ID}, ids(found))

	_, err = repo.FindByCriteria(ctx, nil, types.Asc("salary"))
	assert.ErrorIs(t, err, repository.ErrUnknownSort)
}

func TestFetchAndCountAgree(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo, contact("AAAAAAAAAA", 1), contact("BBBBBBBBBB", 2), contact("AAAAAAAAAA", 2), &domain.Contact{})

	cases := []*domain.ContactCriteria{
		nil,
		{Nom: &filter.StringFilter{Filter: filter.Filter[string]{Equals: filter.Ptr("AAAAAAAAAA")}}},
		{Nom: &filter.StringFilter{DoesNotContain: filter.Ptr("AAA")}},
		{Age: &filter.IntegerFilter{GreaterThan: filter.Ptr(1)}},
		{Age: &filter.IntegerFilter{Filter: filter.Filter[int]{Specified: filter.Ptr(false)}}},
		{
			Nom: &filter.StringFilter{Filter: filter.Filter[string]{Equals: filter.Ptr("AAAAAAAAAA")}},
			Age: &filter.IntegerFilter{Filter: filter.Filter[int]{Equals: filter.Ptr(1)}},
		},
	}
	want := []int{4, 2, 2, 2, 1, 1}
	for i, c := range cases {
		found, err := repo.FindByCriteria(ctx, c)
		require.NoError(t, err)
		count, err := repo.CountByCriteria(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, want[i], count, "case %d", i)
		assert.Len(t, found, count, "case %d", i)
	}
}

func TestPageByCriteria(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		seed(t, repo, contact("AAAAAAAAAA", i))
	}
	byAge := &domain.ContactCriteria{Age: &filter.IntegerFilter{LessThanOrEqual: filter.Ptr(4)}}

	page, err := repo.PageByCriteria(ctx, byAge, types.NewPageRequest(1, 3, types.Asc("age")))
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 3)
	assert.Equal(t, 1, *page.Items[0].Age)

	page, err = repo.PageByCriteria(ctx, byAge, types.NewPageRequest(2, 3, types.Asc("age")))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 4, *page.Items[0].Age)

	page, err = repo.PageByCriteria(ctx, byAge, types.NewPageRequest(9, 3))
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Empty(t, page.Items)

	none := &domain.ContactCriteria{Age: &filter.IntegerFilter{GreaterThan: filter.Ptr(99)}}
	page, err = repo.PageByCriteria(ctx, none, nil)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	page, err = repo.Page(ctx, types.NewDefaultPageRequest(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 5, *page.Items[0].Age)
}

func TestUnknownAttributeIsNotAnEmptyResult(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo, contact("AAAAAAAAAA", 1))

	bogus := criteria.Func(func(b *criteria.Builder) {
		b.String("email", &filter.StringFilter{Contains: filter.Ptr("@")})
	})
	_, err := repo.FindByCriteria(ctx, bogus)
	assert.True(t, errors.Is(err, criteria.ErrUnknownAttribute))
	_, err = repo.CountByCriteria(ctx, bogus)
	assert.ErrorIs(t, err, criteria.ErrUnknownAttribute)
	page, err := repo.PageByCriteria(ctx, bogus, nil)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, criteria.ErrUnknownAttribute)
}

func TestUpsert(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	c := contact("AAAAAAAAAA", 1)
	seed(t, repo, c)

	changed := contact("BBBBBBBBBB", 2)
	changed.ID = c.ID
	require.NoError(t, repo.Upsert(ctx, []string{"nom"}, nil, changed, contact("CCCCCCCCCC", 3)))

	got, err := repo.GetOne(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBBBB", *got.Nom)
	assert.Equal(t, 1, *got.Age)

	count, err := repo.CountByCriteria(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Error(t, repo.Upsert(ctx, nil, nil, changed))
}

func TestTransactionRollback(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	kept := contact("AAAAAAAAAA", 1)
	seed(t, repo, kept)

	boom := errors.New("boom")
	err := repo.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		got, err := repo.GetOneWithTx(ctx, &tx, kept.ID)
		require.NoError(t, err)
		assert.Equal(t, kept.ID, got.ID)
		require.NoError(t, repo.CreateWithTx(ctx, &tx, contact("BBBBBBBBBB", 2)))
		require.NoError(t, repo.UpsertWithTx(ctx, &tx, []string{"nom"}, nil, contact("CCCCCCCCCC", 3)))
		require.NoError(t, repo.DeleteWithTx(ctx, &tx, kept.ID))
		_, err = repo.GetOneWithTx(ctx, &tx, kept.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{kept.ID}, ids(all))
}

func TestSearchesOnClosedDatabaseFail(t *testing.T) {
	repo, manager := newRepoWithManager(t)
	ctx := context.Background()
	seed(t, repo, contact("AAAAAAAAAA", 1))
	require.NoError(t, manager.Disconnect())

	found, err := repo.FindByCriteria(ctx, nil)
	assert.Error(t, err)
	assert.Nil(t, found)

	count, err := repo.CountByCriteria(ctx, nil)
	assert.Error(t, err)
	assert.Zero(t, count)

	page, err := repo.PageByCriteria(ctx, nil, types.NewPageRequest(1, 20))
	assert.Error(t, err)
	assert.Nil(t, page)
}
