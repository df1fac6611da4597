package models

import "time"

// The three toggle relations: the existence of a row is the whole state,
// and the unique index is the only guard against concurrent double-adds.
// Removal is a hard delete so a later re-add never collides with a
// tombstone, hence no gorm.Model here.

type Favourite struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_favourite;not null"`
	RecipeID  uint `gorm:"uniqueIndex:idx_user_favourite;not null"`
	CreatedAt time.Time
}

type CartEntry struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_cart;not null"`
	RecipeID  uint `gorm:"uniqueIndex:idx_user_cart;not null"`
	CreatedAt time.Time
}

// Follow: follower subscribes to an author's recipes.
// Nothing here stops a user following themselves.
type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"uniqueIndex:idx_follower_author;not null"`
	AuthorID   uint `gorm:"uniqueIndex:idx_follower_author;not null"`
	CreatedAt  time.Time
}
