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
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ContactDTO is the wire form of a Contact.
type ContactDTO struct {
	ID         *int64  `json:"id"`
	Nom        *string `json:"nom" validate:"omitempty,max=255"`
	Prenom     *string `json:"prenom" validate:"omitempty,max=255"`
	Age        *int    `json:"age"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	Codepostal *int    `json:"codepostal"`
}

// Validate checks the attribute constraints of d.
func (d *ContactDTO) Validate() error {
	return validate.Struct(d)
}

// ToDTO maps an entity to its wire form.
func ToDTO(c *Contact) *ContactDTO {
	if c == nil {
		return nil
	}
	id := c.ID
	return &ContactDTO{
		ID:         &id,
		Nom:        c.Nom,
		Prenom:     c.Prenom,
		Age:        c.Age,
		Address:    c.Address,
		Codepostal: c.Codepostal,
	}
}

// ToDTOs maps a slice of entities.
func ToDTOs(cs []*Contact) []*ContactDTO {
	out := make([]*ContactDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToDTO(c))
	}
	return out
}

// ToEntity maps a wire form to an entity. A nil id maps to zero.
func ToEntity(d *ContactDTO) *Contact {
	if d == nil {
		return nil
	}
	c := &Contact{
		Nom:        d.Nom,
		Prenom:     d.Prenom,
		Age:        d.Age,
		Address:    d.Address,
		Codepostal: d.Codepostal,
	}
	if d.ID != nil {
		c.ID = *d.ID
	}
	return c
}

// Merge copies the non-nil attributes of d into c. The id is never copied.
func Merge(c *Contact, d *ContactDTO) {
	if d.Nom != nil {
		c.Nom = d.Nom
	}
	if d.Prenom != nil {
		c.Prenom = d.Prenom
	}
	if d.Age != nil {
		c.Age = d.Age
	}
	if d.Address != nil {
		c.Address = d.Address
	}
	if d.Codepostal != nil {
		c.Codepostal = d.Codepostal
	}
}
