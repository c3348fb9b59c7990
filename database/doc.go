// Package database provides connection management, migrations, query hooks,
// driver error classification, configuration types, logging and health checks
// built on top of Bun.
package database
