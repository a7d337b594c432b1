package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate applies a SELECT ... FOR UPDATE row lock. SQLite has no FOR
// UPDATE clause; its single-writer transaction model already serializes the
// check-then-write sequence, so the clause is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
