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
	"fmt"
	"strings"

	"github.com/tomoncle/contact/filter"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/schema"
)

// Builder accumulates the sub-predicates of one compilation. It resolves
// attribute names against the table and keeps the first error it meets;
// every later call is a no-op.
type Builder struct {
	table   *schema.Table
	dialect dialect.Name
	pred    *Predicate
	err     error
}

func (b *Builder) column(attr string) (schema.Safe, bool) {
	if b.err != nil {
		return "", false
	}
	field, ok := b.table.FieldMap[attr]
	if !ok {
		b.err = fmt.Errorf("%w: %q is not a column of %s", ErrUnknownAttribute, attr, b.table.Name)
		return "", false
	}
	return schema.Safe(string(b.table.SQLAlias) + "." + string(field.SQLName)), true
}

func base[T any](b *Builder, col schema.Safe, f *filter.Filter[T]) {
	if f.Equals != nil {
		b.pred.and("? = ?", col, *f.Equals)
	}
	if f.NotEquals != nil {
		b.pred.and("? <> ?", col, *f.NotEquals)
	}
	if f.In != nil {
		if len(f.In) == 0 {
			b.pred.and("1 = 0")
		} else {
			b.pred.and("? IN (?)", col, bun.In(f.In))
		}
	}
	if len(f.NotIn) > 0 {
		b.pred.and("? NOT IN (?)", col, bun.In(f.NotIn))
	}
	if f.Specified != nil {
		if *f.Specified {
			b.pred.and("? IS NOT NULL", col)
		} else {
			b.pred.and("? IS NULL", col)
		}
	}
}

// Field adds the equality, membership and presence operators of f on attr.
func Field[T any](b *Builder, attr string, f *filter.Filter[T]) {
	col, ok := b.column(attr)
	if !ok || f.IsEmpty() {
		return
	}
	base(b, col, f)
}

// Range adds Field's operators plus the ordering operators of f on attr.
func Range[T any](b *Builder, attr string, f *filter.RangeFilter[T]) {
	col, ok := b.column(attr)
	if !ok || f.IsEmpty() {
		return
	}
	base(b, col, &f.Filter)
	if f.GreaterThan != nil {
		b.pred.and("? > ?", col, *f.GreaterThan)
	}
	if f.GreaterThanOrEqual != nil {
		b.pred.and("? >= ?", col, *f.GreaterThanOrEqual)
	}
	if f.LessThan != nil {
		b.pred.and("? < ?", col, *f.LessThan)
	}
	if f.LessThanOrEqual != nil {
		b.pred.and("? <= ?", col, *f.LessThanOrEqual)
	}
}

// String adds the string operators of f on attr. Contains never matches
// NULL; DoesNotContain does.
func (b *Builder) String(attr string, f *filter.StringFilter) {
	col, ok := b.column(attr)
	if !ok || f.IsEmpty() {
		return
	}
	base(b, col, &f.Filter)
	if f.Contains != nil {
		query, args := b.contains(col, *f.Contains)
		b.pred.and(query, args...)
	}
	if f.DoesNotContain != nil {
		query, args := b.contains(col, *f.DoesNotContain)
		b.pred.and("? IS NULL OR NOT ("+query+")", append([]interface{}{col}, args...)...)
	}
}

// Long, Integer, Boolean and Instant are shorthands for the filter aliases.

func (b *Builder) Long(attr string, f *filter.LongFilter) { Range(b, attr, f) }

func (b *Builder) Integer(attr string, f *filter.IntegerFilter) { Range(b, attr, f) }

func (b *Builder) Boolean(attr string, f *filter.BooleanFilter) { Field(b, attr, f) }

func (b *Builder) Instant(attr string, f *filter.InstantFilter) { Range(b, attr, f) }

// contains renders a case-sensitive substring test. LIKE folds case on
// SQLite and on most MySQL collations, so those use position functions.
func (b *Builder) contains(col schema.Safe, s string) (string, []interface{}) {
	switch b.dialect {
	case dialect.SQLite:
		return "instr(?, ?) > 0", []interface{}{col, s}
	case dialect.PG:
		return "strpos(?, ?) > 0", []interface{}{col, s}
	case dialect.MySQL:
		return "LOCATE(BINARY ?, ?) > 0", []interface{}{s, col}
	default:
		return "? LIKE ? ESCAPE '\\'", []interface{}{col, "%" + escapeLike(s) + "%"}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
