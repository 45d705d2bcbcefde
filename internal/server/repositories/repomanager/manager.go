package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/assets"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/claims"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/memories"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/orders"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/publicpages"
)

// RepositoryManager vends repositories bound to a *sql.DB or a *sql.Tx so
// services can run several of them in one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Memories(db dbx.DBTX) memories.Repository
	PublicPages(db dbx.DBTX) publicpages.Repository
	Claims(db dbx.DBTX) claims.Repository
	Orders(db dbx.DBTX) orders.Repository
	Assets(db dbx.DBTX) assets.Repository
}
