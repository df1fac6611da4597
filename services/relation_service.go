package services

import (
	"github.com/Sgonchar89/foodgram-project/errs"

	"gorm.io/gorm"
)

// The favourite, cart and follow actions share one two-state machine per
// key pair: ABSENT (no row) and PRESENT (row exists). addRelation and
// removeRelation implement both transitions once; the services are thin
// call sites supplying the row type and key.

// addRelation inserts row after checking that no row matches key.
// The pre-check gives the common case a clean Conflict; the unique
// index backstops the race where two adds pass the check together,
// and that loser also surfaces as Conflict via errs.FromDB.
func addRelation[T any](db *gorm.DB, entity string, row *T, key *T) error {
	var count int64
	if err := db.Model(new(T)).Where(key).Count(&count).Error; err != nil {
		return errs.FromDB(entity, err)
	}
	if count > 0 {
		return errs.NewConflict(entity)
	}
	if err := db.Create(row).Error; err != nil {
		return errs.FromDB(entity, err)
	}
	return nil
}

// removeRelation deletes the row matching key, failing with NotFound when
// the relation was already absent.
func removeRelation[T any](db *gorm.DB, entity string, key *T) error {
	res := db.Where(key).Delete(new(T))
	if res.Error != nil {
		return errs.FromDB(entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound(entity)
	}
	return nil
}
