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

import "github.com/uptrace/bun"

type condition struct {
	query string
	args  []interface{}
}

// Predicate is a conjunction of SQL conditions over the columns of one table.
// The zero value has no conditions and matches every row.
type Predicate struct {
	conds []condition
}

func (p *Predicate) and(query string, args ...interface{}) {
	p.conds = append(p.conds, condition{query: query, args: args})
}

// Len returns the number of conjoined conditions.
func (p *Predicate) Len() int {
	if p == nil {
		return 0
	}
	return len(p.conds)
}

// IsEmpty reports whether the predicate is always true.
func (p *Predicate) IsEmpty() bool {
	return p.Len() == 0
}

// Apply adds every condition to the WHERE clause of q. Bun joins repeated
// Where calls with AND and wraps each one in parentheses.
func (p *Predicate) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	if p == nil {
		return q
	}
	for _, c := range p.conds {
		q = q.Where(c.query, c.args...)
	}
	return q
}
