// Package postgres provides the PostgreSQL implementation of the store
// contracts, plus error mapping and the schema migration runner.
package postgres
