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

package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// ErrNotFound is returned when a lookup, update or delete by id matches no row.
var ErrNotFound = errors.New("record not found")

// WrapNoRows maps sql.ErrNoRows to ErrNotFound and returns other errors as is.
func WrapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

type SQLError int

const (
	UnknownErr SQLError = iota
	NoRowsErr
	NoTableErr
	NoColumnErr
	DuplicateKeyErr
	NotNullViolationErr
	CheckConstraintViolationErr
	DataTruncatedErr
)

var mysqlErrors = map[uint16]SQLError{
	1054: NoColumnErr,
	1146: NoTableErr,
	1062: DuplicateKeyErr,
	1048: NotNullViolationErr,
	3819: CheckConstraintViolationErr,
	1265: DataTruncatedErr,
	1406: DataTruncatedErr,
}

// Keyed by SQLSTATE.
var postgresErrors = map[pq.ErrorCode]SQLError{
	"42703": NoColumnErr,
	"42P01": NoTableErr,
	"23505": DuplicateKeyErr,
	"23502": NotNullViolationErr,
	"23514": CheckConstraintViolationErr,
	"22001": DataTruncatedErr,
}

// SQLite reports constraint failures through the message text only.
var sqliteErrors = []struct {
	fragment string
	kind     SQLError
}{
	{"no such column", NoColumnErr},
	{"no such table", NoTableErr},
	{"unique constraint failed", DuplicateKeyErr},
	{"not null constraint failed", NotNullViolationErr},
	{"check constraint failed", CheckConstraintViolationErr},
}

// IsSqlError classifies a driver error of any supported dialect. is is false
// for nil and for errors no dialect recognizes.
func IsSqlError(err error) (is bool, sqlErr SQLError) {
	if err == nil {
		return false, UnknownErr
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return true, NoRowsErr
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		kind, ok := mysqlErrors[mysqlErr.Number]
		return ok, kind
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		kind, ok := postgresErrors[pqErr.Code]
		return ok, kind
	}
	s := strings.ToLower(err.Error())
	for _, e := range sqliteErrors {
		if strings.Contains(s, e.fragment) {
			return true, e.kind
		}
	}
	return false, UnknownErr
}
