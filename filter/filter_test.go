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

package filter

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	var nilString *StringFilter
	var nilRange *IntegerFilter
	var nilBool *BooleanFilter
	assert.True(t, nilString.IsEmpty())
	assert.True(t, nilRange.IsEmpty())
	assert.True(t, nilBool.IsEmpty())

	assert.True(t, (&StringFilter{}).IsEmpty())
	assert.True(t, (&InstantFilter{}).IsEmpty())

	assert.False(t, (&StringFilter{Contains: Ptr("a")}).IsEmpty())
	assert.False(t, (&StringFilter{Filter: Filter[string]{In: []string{}}}).IsEmpty())
	assert.False(t, (&IntegerFilter{LessThan: Ptr(3)}).IsEmpty())
	assert.False(t, (&IntegerFilter{Filter: Filter[int]{Specified: Ptr(false)}}).IsEmpty())
	assert.False(t, (&BooleanFilter{Equals: Ptr(false)}).IsEmpty())
}

func TestParseOperator(t *testing.T) {
	for _, op := range Operators() {
		got, ok := ParseOperator(op.Name())
		require.True(t, ok, op.Name())
		assert.Equal(t, op, got)
		assert.NotEqual(t, "unknown", op.Desc())
	}

	_, ok := ParseOperator("between")
	assert.False(t, ok)

	assert.False(t, Operator(99).IsValid())
	assert.Equal(t, -1, Operator(99).Number())
	assert.True(t, LessThan.IsOrdering())
	assert.False(t, Contains.IsOrdering())
}

func TestParserString(t *testing.T) {
	values := url.Values{}
	values.Set("nom.equals", "AAAAAAAAAA")
	values.Set("nom.in", "AAAAAAAAAA,BBBBBBBBBB")
	values.Set("nom.doesNotContain", "BBBBBBBBBB")
	values.Set("nom.greaterThan", "ignored")
	values.Set("sort", "id,desc")

	p := NewParser(values)
	f := p.String("nom")
	require.NoError(t, p.Err())
	require.NotNil(t, f)

	assert.Equal(t, "AAAAAAAAAA", *f.Equals)
	assert.Equal(t, []string{"AAAAAAAAAA", "BBBBBBBBBB"}, f.In)
	assert.Equal(t, "BBBBBBBBBB", *f.DoesNotContain)
	assert.Nil(t, f.Contains)
	assert.Nil(t, f.NotIn)

	assert.Nil(t, p.String("prenom"))
}

func TestParserRange(t *testing.T) {
	values := url.Values{}
	values.Set("age.greaterThan", "0")
	values.Set("age.lessThanOrEqual", "10")
	values.Add("age.notIn", "3,4")
	values.Add("age.notIn", "5")
	values.Set("age.specified", "true")
	values.Set("id.equals", "42")
	values.Set("created.lessThan", "2024-01-02T03:04:05Z")

	p := NewParser(values)
	age := p.Integer("age")
	id := p.Long("id")
	created := p.Instant("created")
	require.NoError(t, p.Err())

	assert.Equal(t, 0, *age.GreaterThan)
	assert.Equal(t, 10, *age.LessThanOrEqual)
	assert.ElementsMatch(t, []int{3, 4, 5}, age.NotIn)
	assert.True(t, *age.Specified)
	assert.Equal(t, int64(42), *id.Equals)
	assert.True(t, created.LessThan.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestParserEmptyInList(t *testing.T) {
	p := NewParser(url.Values{"nom.in": {""}})
	f := p.String("nom")
	require.NoError(t, p.Err())
	require.NotNil(t, f.In)
	assert.Empty(t, f.In)
	assert.False(t, f.IsEmpty())
}

func TestParserInvalidValue(t *testing.T) {
	p := NewParser(url.Values{
		"age.greaterThan": {"five"},
		"active.equals":   {"maybe"},
	})
	assert.Nil(t, p.Integer("age").GreaterThan)
	p.Boolean("active")

	err := p.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Contains(t, err.Error(), "age.greaterThan")
}
