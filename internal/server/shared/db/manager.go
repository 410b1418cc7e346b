// Package db wires the PostgreSQL connection, migrations, and repositories
// into a single manager with a lifecycle owned by the application.
package db

import (
	"context"
	"database/sql"

	"github.com/esavelyev/accountd/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Ping(context.Context) error
	Close() error
}
