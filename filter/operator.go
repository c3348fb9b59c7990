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

import "github.com/tomoncle/contact/types"

// Operator names one filter operation as it appears in a query string.
type Operator int

const (
	Equals Operator = iota
	NotEquals
	In
	NotIn
	Specified
	Contains
	DoesNotContain
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
)

var _ types.BaseEnum = Operator(0)

var operators = []Operator{
	Equals, NotEquals, In, NotIn, Specified, Contains, DoesNotContain,
	GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual,
}

var operatorNames = [...]string{
	Equals:             "equals",
	NotEquals:          "notEquals",
	In:                 "in",
	NotIn:              "notIn",
	Specified:          "specified",
	Contains:           "contains",
	DoesNotContain:     "doesNotContain",
	GreaterThan:        "greaterThan",
	GreaterThanOrEqual: "greaterThanOrEqual",
	LessThan:           "lessThan",
	LessThanOrEqual:    "lessThanOrEqual",
}

var operatorDescs = [...]string{
	Equals:             "attribute equals the value",
	NotEquals:          "attribute differs from the value",
	In:                 "attribute is one of the values",
	NotIn:              "attribute is none of the values",
	Specified:          "attribute is (true) or is not (false) set",
	Contains:           "attribute contains the substring",
	DoesNotContain:     "attribute is unset or does not contain the substring",
	GreaterThan:        "attribute is greater than the value",
	GreaterThanOrEqual: "attribute is greater than or equal to the value",
	LessThan:           "attribute is less than the value",
	LessThanOrEqual:    "attribute is less than or equal to the value",
}

// ParseOperator resolves an operator from its query-string name.
func ParseOperator(name string) (Operator, bool) {
	return types.LookupEnum(operators, name)
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	out := make([]Operator, len(operators))
	copy(out, operators)
	return out
}

func (o Operator) IsValid() bool { return o >= Equals && o <= LessThanOrEqual }

func (o Operator) Number() int {
	if !o.IsValid() {
		return types.IllegalValue
	}
	return int(o)
}

func (o Operator) Name() string {
	if !o.IsValid() {
		return types.IllegalName
	}
	return operatorNames[o]
}

func (o Operator) String() string { return o.Name() }

func (o Operator) Desc() string {
	if !o.IsValid() {
		return types.IllegalDesc
	}
	return operatorDescs[o]
}

// IsOrdering reports whether the operator compares by natural order.
func (o Operator) IsOrdering() bool {
	return o >= GreaterThan && o <= LessThanOrEqual
}
