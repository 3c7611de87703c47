package appointment

import (
	"context"
	"database/sql"

	"github.com/karimjl/DCB-AppointmentService/pkg/dbmetrics"
)

// Database executor interfaces are shared with dbmetrics, so the repository
// works with *sql.DB, *dbmetrics.DB and open transactions alike
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
