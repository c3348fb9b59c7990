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

package domain

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/contact/filter"
)

func TestParseContactCriteria(t *testing.T) {
	values, err := url.ParseQuery("nom.equals=AAAAAAAAAA&age.greaterThanOrEqual=1&codepostal.in=1,2&address.specified=false&page=0&sort=id,desc&other.equals=x")
	require.NoError(t, err)

	c, err := ParseContactCriteria(values)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAA", *c.Nom.Equals)
	assert.Equal(t, 1, *c.Age.GreaterThanOrEqual)
	assert.Equal(t, []int{1, 2}, c.Codepostal.In)
	assert.False(t, *c.Address.Specified)
	assert.Nil(t, c.ID)
	assert.Nil(t, c.Prenom)
}

func TestParseContactCriteriaInvalid(t *testing.T) {
	_, err := ParseContactCriteria(url.Values{"id.equals": {"abc"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, filter.ErrInvalidValue)
}

func TestContactDTOValidate(t *testing.T) {
	ok := &ContactDTO{Nom: filter.Ptr(strings.Repeat("a", MaxTextLength))}
	assert.NoError(t, ok.Validate())
	assert.NoError(t, (&ContactDTO{}).Validate())

	long := &ContactDTO{Address: filter.Ptr(strings.Repeat("a", MaxTextLength+1))}
	err := long.Validate()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Address", verrs[0].Field())
}

func TestMapping(t *testing.T) {
	entity := &Contact{ID: 7, Nom: filter.Ptr("AAAAAAAAAA"), Age: filter.Ptr(1)}
	dto := ToDTO(entity)
	assert.Equal(t, int64(7), *dto.ID)
	assert.Equal(t, entity.Nom, dto.Nom)
	assert.Nil(t, dto.Prenom)

	back := ToEntity(dto)
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.Age, back.Age)

	assert.Zero(t, ToEntity(&ContactDTO{}).ID)
	assert.Nil(t, ToDTO(nil))
	assert.Len(t, ToDTOs([]*Contact{entity, entity}), 2)
}

func TestMerge(t *testing.T) {
	c := &Contact{ID: 1, Nom: filter.Ptr("AAAAAAAAAA"), Prenom: filter.Ptr("AAAAAAAAAA"), Age: filter.Ptr(1)}
	Merge(c, &ContactDTO{ID: filter.Ptr(int64(9)), Prenom: filter.Ptr("BBBBBBBBBB"), Codepostal: filter.Ptr(2)})

	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "AAAAAAAAAA", *c.Nom)
	assert.Equal(t, "BBBBBBBBBB", *c.Prenom)
	assert.Equal(t, 1, *c.Age)
	assert.Equal(t, 2, *c.Codepostal)
	assert.Nil(t, c.Address)
}
