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

package criteria

import (
	"errors"

	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/schema"
)

var (
	// ErrUnknownAttribute is returned when criteria name a column the table
	// does not have. It is a configuration error and is never retried.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrNoTable is returned when Compile is called without a record shape.
	ErrNoTable = errors.New("criteria: no table to compile against")
)

// Criteria is implemented by per-record query objects. Specify visits every
// queryable attribute once, in a fixed order, passing its filter (possibly
// nil or empty) to the builder.
type Criteria interface {
	Specify(b *Builder)
}

// Func adapts a plain function to Criteria.
type Func func(b *Builder)

func (f Func) Specify(b *Builder) { f(b) }

// Compile translates c into one predicate over table. Nil criteria, and
// criteria whose filters are all empty, compile to the always-true predicate.
// The returned predicate belongs to the caller and is not cached.
func Compile(c Criteria, table *schema.Table, name dialect.Name) (*Predicate, error) {
	if table == nil {
		return nil, ErrNoTable
	}
	b := &Builder{table: table, dialect: name, pred: &Predicate{}}
	if c != nil {
		c.Specify(b)
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.pred, nil
}
