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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestBounds(t *testing.T) {
	p := NewPageRequest(0, 0)
	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, DefaultPageSize, p.GetPageSize())
	assert.Equal(t, 0, p.GetOffset())

	p = NewPageRequest(3, MaxPageSize+1)
	assert.Equal(t, MaxPageSize, p.GetPageSize())
	assert.Equal(t, 2*MaxPageSize, p.GetOffset())

	p = NewPageRequest(math.MaxInt, 10)
	assert.Equal(t, MaxPage, p.GetPage())
	assert.Equal(t, (MaxPage-1)*10, p.GetOffset())
	assert.Positive(t, p.GetOffset())
}

func TestPageRequestOrders(t *testing.T) {
	def := []Order{Desc("id")}
	assert.Equal(t, def, NewDefaultPageRequest(1, 10).GetOrders(def...))
	assert.Equal(t, []Order{Asc("nom")}, NewPageRequest(1, 10, Asc("nom")).GetOrders(def...))
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("DESC")
	assert.True(t, ok)
	assert.Equal(t, DirectionDesc, d)
	assert.Equal(t, "DESC", d.String())

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
	assert.False(t, Direction(7).IsValid())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, NewDefaultPagination[int](1, 10).TotalPages())
	assert.Equal(t, 4, (&Pagination[int]{PageSize: 10, Total: 35}).TotalPages())
	assert.Equal(t, 0, (&Pagination[int]{Total: 35}).TotalPages())
}
