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
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type widget struct {
	bun.BaseModel `bun:"table:widgets"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,unique,notnull"`
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) record(msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, fmt.Sprint(append([]interface{}{msg}, fields...)...))
}

func (l *recordingLogger) Debug(msg string, fields ...interface{}) { l.record(msg, fields...) }
func (l *recordingLogger) Info(msg string, fields ...interface{})  { l.record(msg, fields...) }
func (l *recordingLogger) Warn(msg string, fields ...interface{})  { l.record(msg, fields...) }
func (l *recordingLogger) Error(msg string, fields ...interface{}) { l.record(msg, fields...) }

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

func memoryManager(t *testing.T) AbstractDatabaseManager {
	t.Helper()
	manager := NewDatabaseManager(&ConnectionConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, manager.Connect(context.Background()))
	t.Cleanup(func() { _ = manager.Disconnect() })
	return manager
}

func TestMemoryManagerConnects(t *testing.T) {
	manager := memoryManager(t)
	ctx := context.Background()

	require.NoError(t, manager.Ping(ctx))
	assert.Equal(t, 1, manager.GetStats().MaxOpenConns)

	status := manager.HealthCheck(ctx)
	assert.True(t, status.Healthy)
	assert.True(t, status.Connected)
	assert.Empty(t, status.LastError)
}

func TestMemoryDatabasesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := memoryManager(t)
	b := memoryManager(t)

	_, err := a.GetDB().NewCreateTable().Model((*widget)(nil)).Exec(ctx)
	require.NoError(t, err)

	_, err = b.GetDB().NewSelect().Model((*widget)(nil)).Count(ctx)
	require.Error(t, err)
	is, kind := IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, NoTableErr, kind)
}

func TestUnsupportedType(t *testing.T) {
	manager := NewDatabaseManager(&ConnectionConfig{Type: "oracle"})
	assert.Error(t, manager.Connect(context.Background()))
	assert.Nil(t, manager.GetDB())
	assert.Error(t, manager.Ping(context.Background()))
	assert.False(t, manager.HealthCheck(context.Background()).Healthy)
}

func TestRunMigrationsCreatesRegisteredTables(t *testing.T) {
	RegisterModel(NewModelAdapter((*widget)(nil), 10))
	RegisterModel(NewModelAdapter((*widget)(nil), 10))
	assert.Len(t, RegisteredModelInstances(), 1)

	manager := memoryManager(t)
	ctx := context.Background()
	require.NoError(t, manager.RunMigrations(ctx))
	// A second run finds version 001 applied and does nothing.
	require.NoError(t, manager.RunMigrations(ctx))

	applied, err := NewMigrationManager(manager.GetDB(), nil).GetAppliedMigrations(ctx)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, "001", applied[0].Version)

	_, err = manager.GetDB().NewInsert().Model(&widget{Name: "a"}).Exec(ctx)
	require.NoError(t, err)
	_, err = manager.GetDB().NewInsert().Model(&widget{Name: "a"}).Exec(ctx)
	is, kind := IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, kind)
}

func TestWrapNoRows(t *testing.T) {
	assert.ErrorIs(t, WrapNoRows(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, WrapNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)), ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, WrapNoRows(other))
	assert.Nil(t, WrapNoRows(nil))

	is, kind := IsSqlError(ErrNotFound)
	assert.True(t, is)
	assert.Equal(t, NoRowsErr, kind)

	is, _ = IsSqlError(nil)
	assert.False(t, is)
}

func TestMetricsHook(t *testing.T) {
	manager := memoryManager(t)
	reg := prometheus.NewRegistry()
	manager.GetDB().AddQueryHook(NewMetricsHook(reg, "test"))
	ctx := context.Background()

	_, err := manager.GetDB().NewCreateTable().Model((*widget)(nil)).Exec(ctx)
	require.NoError(t, err)
	_, err = manager.GetDB().NewSelect().Model((*widget)(nil)).Count(ctx)
	require.NoError(t, err)
	_, err = manager.GetDB().NewSelect().Table("missing").Count(ctx)
	require.Error(t, err)

	n, err := testutil.GatherAndCount(reg, "test_db_query_duration_seconds")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)
	n, err = testutil.GatherAndCount(reg, "test_db_query_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSlowQueryHook(t *testing.T) {
	manager := memoryManager(t)
	logger := &recordingLogger{}
	manager.GetDB().AddQueryHook(NewSlowQueryHook(time.Nanosecond, logger))

	var one int
	require.NoError(t, manager.GetDB().NewRaw("SELECT 1").Scan(context.Background(), &one))

	msgs := logger.messages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0], "SELECT 1")
}

func TestWithPoolDefaults(t *testing.T) {
	cfg := &ConnectionConfig{Type: "sqlite", DBName: "x", MaxOpenConns: 5}
	cfg.withPoolDefaults()
	def := DefaultConnectionConfig()

	assert.Equal(t, 5, cfg.MaxOpenConns)
	assert.Equal(t, def.MaxIdleConns, cfg.MaxIdleConns)
	assert.Equal(t, def.ConnectTimeout, cfg.ConnectTimeout)
	assert.Zero(t, cfg.SlowQueryTime)
	assert.False(t, cfg.IsMemory())
}

func TestFailedHealthCheckKeepsHandle(t *testing.T) {
	manager := memoryManager(t)
	db := manager.GetDB()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	status := manager.HealthCheck(ctx)
	assert.False(t, status.Healthy)
	assert.True(t, status.Connected)
	assert.NotEmpty(t, status.LastError)
	require.NotNil(t, status.Pool)
	assert.Equal(t, 1, status.Pool.MaxOpenConns)

	assert.Same(t, db, manager.GetDB())
	var one int
	require.NoError(t, db.NewRaw("SELECT 1").Scan(context.Background(), &one))
	assert.True(t, manager.HealthCheck(context.Background()).Healthy)
}

func TestDisconnect(t *testing.T) {
	manager := memoryManager(t)
	db := manager.GetDB()
	require.NoError(t, manager.Disconnect())
	require.NoError(t, manager.Disconnect())

	assert.Nil(t, manager.GetDB())
	assert.Equal(t, &DBStats{}, manager.GetStats())
	status := manager.HealthCheck(context.Background())
	assert.False(t, status.Healthy)
	assert.False(t, status.Connected)

	assert.ErrorContains(t, db.PingContext(context.Background()), "database is closed")
	assert.Error(t, manager.RunMigrations(context.Background()))
}

func TestInitDB(t *testing.T) {
	t.Cleanup(func() { _ = CloseDB() })
	ctx := context.Background()

	_, err := InitDB(ctx, nil)
	assert.Error(t, err)
	_, err = InitDB(ctx, &Config{ConnectionConfig: ConnectionConfig{Type: "oracle", DBName: "x"}})
	assert.Error(t, err)
	assert.Nil(t, GetDB())
	assert.False(t, GetHealthStatus(ctx).Healthy)

	cfg := &Config{
		ConnectionConfig: ConnectionConfig{Type: "sqlite", DBName: ":memory:"},
		MigrateConfig:    MigrateConfig{EnableMigrateOnStartup: true},
	}
	first, err := InitDB(ctx, cfg)
	require.NoError(t, err)
	assert.Same(t, first, GetDB())
	assert.True(t, GetHealthStatus(ctx).Healthy)

	second, err := InitDB(ctx, cfg)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Error(t, first.PingContext(ctx))

	require.NoError(t, CloseDB())
	assert.Nil(t, GetDB())
	assert.False(t, GetHealthStatus(ctx).Healthy)
	require.NoError(t, CloseDB())
}

func TestDataSource(t *testing.T) {
	driver, dsn, _, err := dataSource(&ConnectionConfig{
		Type: "postgres", Host: "db", Username: "app", Password: "p@ss", DBName: "contacts",
		ConnectTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "postgres://app:p%40ss@db:5432/contacts?connect_timeout=10&sslmode=disable", dsn)

	driver, dsn, _, err = dataSource(&ConnectionConfig{
		Type: "mysql", Host: "db", Port: 3307, Username: "app", Password: "secret", DBName: "contacts",
	})
	require.NoError(t, err)
	assert.Equal(t, "mysql", driver)
	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:3307", parsed.Addr)
	assert.Equal(t, "contacts", parsed.DBName)
	assert.True(t, parsed.ClientFoundRows)
	assert.True(t, parsed.ParseTime)

	_, dsn, _, err = dataSource(&ConnectionConfig{Type: "sqlite", DBName: "contact"})
	require.NoError(t, err)
	assert.Equal(t, "contact.db", dsn)

	_, _, _, err = dataSource(&ConnectionConfig{Type: "oracle"})
	assert.Error(t, err)
}

func TestIsSqlErrorDialects(t *testing.T) {
	cases := []struct {
		name string
		err  error
		is   bool
		kind SQLError
	}{
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, true, DuplicateKeyErr},
		{"mysql missing table", fmt.Errorf("count: %w", &mysql.MySQLError{Number: 1146}), true, NoTableErr},
		{"mysql unmapped", &mysql.MySQLError{Number: 1205}, false, UnknownErr},
		{"postgres duplicate", &pq.Error{Code: "23505"}, true, DuplicateKeyErr},
		{"postgres not null", &pq.Error{Code: "23502"}, true, NotNullViolationErr},
		{"postgres unmapped", &pq.Error{Code: "40001"}, false, UnknownErr},
		{"sqlite check", errors.New("constraint failed: CHECK constraint failed: age"), true, CheckConstraintViolationErr},
		{"sqlite missing column", errors.New("SQL logic error: no such column: x (1)"), true, NoColumnErr},
		{"plain", errors.New("boom"), false, UnknownErr},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is, kind := IsSqlError(c.err)
			assert.Equal(t, c.is, is)
			assert.Equal(t, c.kind, kind)
		})
	}
}
