// Package repository provides a generic repository built on Bun for CRUD,
// criteria search with fetch and count, pagination, transactions and upserts.
package repository
