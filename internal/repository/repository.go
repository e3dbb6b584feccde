// Package repository handles all interactions with the database.
//
// It contains the SQL queries and methods to fetch, persist,
// update or delete data, abstracting SQL logic away from the
// service layer.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgx used by repositories.
//
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
