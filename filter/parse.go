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
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidValue is returned when a query-string value cannot be converted
// to the attribute's type.
var ErrInvalidValue = errors.New("invalid filter value")

// Converter turns one raw query-string value into T.
type Converter[T any] func(string) (T, error)

func ParseString(s string) (string, error) { return s, nil }

func ParseInt(s string) (int, error) { return strconv.Atoi(s) }

func ParseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func ParseBool(s string) (bool, error) { return strconv.ParseBool(s) }

// ParseInstant accepts RFC 3339 timestamps, with or without fractional seconds.
func ParseInstant(s string) (time.Time, error) { return time.Parse(time.RFC3339Nano, s) }

// Parser reads "<attribute>.<operator>=<value>" pairs from query values.
// Keys that do not name a known operator are ignored, as are paging and
// sorting parameters. The first conversion failure is kept and reported by Err.
type Parser struct {
	values url.Values
	err    error
}

func NewParser(values url.Values) *Parser {
	return &Parser{values: values}
}

// Err returns the first conversion error, wrapping ErrInvalidValue.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) fail(attr string, op Operator, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s.%s=%q: %v", ErrInvalidValue, attr, op.Name(), raw, err)
	}
}

func (p *Parser) lookup(attr string) map[Operator][]string {
	var out map[Operator][]string
	prefix := attr + "."
	for key, vals := range p.values {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		op, ok := ParseOperator(key[len(prefix):])
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[Operator][]string)
		}
		out[op] = append(out[op], vals...)
	}
	return out
}

func one[T any](p *Parser, attr string, op Operator, raw map[Operator][]string, conv Converter[T]) *T {
	vals := raw[op]
	if len(vals) == 0 {
		return nil
	}
	v, err := conv(vals[0])
	if err != nil {
		p.fail(attr, op, vals[0], err)
		return nil
	}
	return &v
}

// list splits comma separated values; "a,b&x.in=c" yields [a b c].
func list[T any](p *Parser, attr string, op Operator, raw map[Operator][]string, conv Converter[T]) []T {
	vals, ok := raw[op]
	if !ok {
		return nil
	}
	out := make([]T, 0, len(vals))
	for _, joined := range vals {
		for _, s := range strings.Split(joined, ",") {
			if s == "" {
				continue
			}
			v, err := conv(s)
			if err != nil {
				p.fail(attr, op, s, err)
				return nil
			}
			out = append(out, v)
		}
	}
	return out
}

func base[T any](p *Parser, attr string, raw map[Operator][]string, conv Converter[T]) Filter[T] {
	return Filter[T]{
		Equals:    one(p, attr, Equals, raw, conv),
		NotEquals: one(p, attr, NotEquals, raw, conv),
		In:        list(p, attr, In, raw, conv),
		NotIn:     list(p, attr, NotIn, raw, conv),
		Specified: one(p, attr, Specified, raw, ParseBool),
	}
}

// Parse reads the equality, membership and presence operators of attr.
// It returns nil when the query names no operator for attr.
func Parse[T any](p *Parser, attr string, conv Converter[T]) *Filter[T] {
	raw := p.lookup(attr)
	if raw == nil {
		return nil
	}
	f := base(p, attr, raw, conv)
	return &f
}

// ParseRange is Parse plus the ordering operators.
func ParseRange[T any](p *Parser, attr string, conv Converter[T]) *RangeFilter[T] {
	raw := p.lookup(attr)
	if raw == nil {
		return nil
	}
	return &RangeFilter[T]{
		Filter:             base(p, attr, raw, conv),
		GreaterThan:        one(p, attr, GreaterThan, raw, conv),
		GreaterThanOrEqual: one(p, attr, GreaterThanOrEqual, raw, conv),
		LessThan:           one(p, attr, LessThan, raw, conv),
		LessThanOrEqual:    one(p, attr, LessThanOrEqual, raw, conv),
	}
}

// String reads a StringFilter for attr.
func (p *Parser) String(attr string) *StringFilter {
	raw := p.lookup(attr)
	if raw == nil {
		return nil
	}
	return &StringFilter{
		Filter:         base(p, attr, raw, ParseString),
		Contains:       one(p, attr, Contains, raw, ParseString),
		DoesNotContain: one(p, attr, DoesNotContain, raw, ParseString),
	}
}

func (p *Parser) Long(attr string) *LongFilter { return ParseRange(p, attr, ParseInt64) }

func (p *Parser) Integer(attr string) *IntegerFilter { return ParseRange(p, attr, ParseInt) }

func (p *Parser) Boolean(attr string) *BooleanFilter { return Parse(p, attr, ParseBool) }

func (p *Parser) Instant(attr string) *InstantFilter { return ParseRange(p, attr, ParseInstant) }
