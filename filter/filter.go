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

import "time"

// Filter holds the equality, membership and presence operators requested for
// one attribute. A nil pointer or nil slice means the operator is unset.
type Filter[T any] struct {
	Equals    *T    `json:"equals,omitempty"`
	NotEquals *T    `json:"notEquals,omitempty"`
	In        []T   `json:"in,omitempty"`
	NotIn     []T   `json:"notIn,omitempty"`
	Specified *bool `json:"specified,omitempty"`
}

// IsEmpty reports whether no operator is set.
func (f *Filter[T]) IsEmpty() bool {
	return f == nil ||
		f.Equals == nil &&
			f.NotEquals == nil &&
			f.In == nil &&
			f.NotIn == nil &&
			f.Specified == nil
}

// RangeFilter adds ordering operators for types with a natural order.
type RangeFilter[T any] struct {
	Filter[T]
	GreaterThan        *T `json:"greaterThan,omitempty"`
	GreaterThanOrEqual *T `json:"greaterThanOrEqual,omitempty"`
	LessThan           *T `json:"lessThan,omitempty"`
	LessThanOrEqual    *T `json:"lessThanOrEqual,omitempty"`
}

func (f *RangeFilter[T]) IsEmpty() bool {
	return f == nil ||
		f.Filter.IsEmpty() &&
			f.GreaterThan == nil &&
			f.GreaterThanOrEqual == nil &&
			f.LessThan == nil &&
			f.LessThanOrEqual == nil
}

// StringFilter adds substring operators to the string equality operators.
type StringFilter struct {
	Filter[string]
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"doesNotContain,omitempty"`
}

func (f *StringFilter) IsEmpty() bool {
	return f == nil ||
		f.Filter.IsEmpty() &&
			f.Contains == nil &&
			f.DoesNotContain == nil
}

type (
	LongFilter    = RangeFilter[int64]
	IntegerFilter = RangeFilter[int]
	BooleanFilter = Filter[bool]
	InstantFilter = RangeFilter[time.Time]
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
