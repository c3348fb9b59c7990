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

package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomoncle/contact/types"
)

// pageParams reads the zero-based "page", the "size" and the repeatable
// "sort=<field>[,<field>...][,asc|desc]" parameters. Malformed numbers fall
// back to the defaults and pages past types.MaxPage are clamped to it.
func pageParams(q url.Values) (page int, size int, orders []types.Order) {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	if page > types.MaxPage-1 {
		page = types.MaxPage - 1
	}
	size, err = strconv.Atoi(q.Get("size"))
	if err != nil || size < 1 {
		size = types.DefaultPageSize
	}
	if size > types.MaxPageSize {
		size = types.MaxPageSize
	}
	for _, raw := range q["sort"] {
		parts := strings.Split(raw, ",")
		dir := types.DirectionAsc
		if d, ok := types.ParseDirection(strings.TrimSpace(parts[len(parts)-1])); ok && len(parts) > 1 {
			dir = d
			parts = parts[:len(parts)-1]
		}
		for _, field := range parts {
			if field = strings.TrimSpace(field); field != "" {
				orders = append(orders, types.Order{Field: field, Direction: dir})
			}
		}
	}
	return page, size, orders
}

// setPaginationHeaders writes X-Total-Count and an RFC 5988 Link header with
// next, prev, last and first relations, pages counted from zero.
func setPaginationHeaders(w http.ResponseWriter, r *http.Request, page, size, total int) {
	w.Header().Set("X-Total-Count", strconv.Itoa(total))

	last := 0
	if total > 0 {
		last = (total+size-1)/size - 1
	}
	link := func(p int, rel string) string {
		u := *r.URL
		q := u.Query()
		q.Set("page", strconv.Itoa(p))
		q.Set("size", strconv.Itoa(size))
		u.RawQuery = q.Encode()
		return fmt.Sprintf("<%s>; rel=%q", u.RequestURI(), rel)
	}
	var links []string
	if page < last {
		links = append(links, link(page+1, "next"))
	}
	if page > 0 {
		links = append(links, link(page-1, "prev"))
	}
	links = append(links, link(last, "last"), link(0, "first"))
	w.Header().Set("Link", strings.Join(links, ","))
}
