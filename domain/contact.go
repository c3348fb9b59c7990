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
	"github.com/tomoncle/contact/database"
	"github.com/uptrace/bun"
)

// MaxTextLength is the column size of the text attributes of a Contact.
const MaxTextLength = 255

// Contact is the persisted contact record. Every attribute but the id is
// optional.
type Contact struct {
	bun.BaseModel `bun:"table:contact,alias:c"`

	ID         int64   `bun:"id,pk,autoincrement"`
	Nom        *string `bun:"nom,type:varchar(255)"`
	Prenom     *string `bun:"prenom,type:varchar(255)"`
	Age        *int    `bun:"age"`
	Address    *string `bun:"address,type:varchar(255)"`
	Codepostal *int    `bun:"codepostal"`
}

func init() {
	database.RegisterModel(database.NewModelAdapter((*Contact)(nil), 1))
}
