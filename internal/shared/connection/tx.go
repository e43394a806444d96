package connection

import (
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle that runs every statement on tx. Repositories use it in
// WithTx so services can own the transaction as a plain *sql.Tx.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	bound.Statement.ConnPool = tx
	return bound
}
