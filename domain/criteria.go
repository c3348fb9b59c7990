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
	"net/url"

	"github.com/tomoncle/contact/criteria"
	"github.com/tomoncle/contact/filter"
)

// ContactCriteria filters contacts attribute by attribute. A nil field does
// not constrain its attribute.
type ContactCriteria struct {
	ID         *filter.LongFilter    `json:"id,omitempty"`
	Nom        *filter.StringFilter  `json:"nom,omitempty"`
	Prenom     *filter.StringFilter  `json:"prenom,omitempty"`
	Age        *filter.IntegerFilter `json:"age,omitempty"`
	Address    *filter.StringFilter  `json:"address,omitempty"`
	Codepostal *filter.IntegerFilter `json:"codepostal,omitempty"`
}

var _ criteria.Criteria = (*ContactCriteria)(nil)

func (c *ContactCriteria) Specify(b *criteria.Builder) {
	if c == nil {
		return
	}
	b.Long("id", c.ID)
	b.String("nom", c.Nom)
	b.String("prenom", c.Prenom)
	b.Integer("age", c.Age)
	b.String("address", c.Address)
	b.Integer("codepostal", c.Codepostal)
}

// ParseContactCriteria reads "<attribute>.<operator>=<value>" parameters.
// Parameters of other attributes, and unknown operators, are ignored.
func ParseContactCriteria(values url.Values) (*ContactCriteria, error) {
	p := filter.NewParser(values)
	c := &ContactCriteria{
		ID:         p.Long("id"),
		Nom:        p.String("nom"),
		Prenom:     p.String("prenom"),
		Age:        p.Integer("age"),
		Address:    p.String("address"),
		Codepostal: p.Integer("codepostal"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
