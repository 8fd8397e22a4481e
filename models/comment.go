package models

import (
	"time"

	"yatube/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	PostID    uint64
	Post      Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func (c Comment) PubDate() string {
	return time.Unix(c.CreatedAt, 0).Format("2 Jan 2006 15:04")
}

func CommentsForPost(postID uint64) []Comment {
	var comments []Comment
	db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments)
	return comments
}
