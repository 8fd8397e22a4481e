package models

import "yatube/db"

// Follow links a follower to an author. The composite primary key makes the
// pair unique at the schema level, so concurrent follow requests cannot
// create duplicate rows.
type Follow struct {
	CreatedAt int64
	UserID    uint64 `gorm:"primaryKey"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"primaryKey"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
