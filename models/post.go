package models

import (
	"time"

	"yatube/db"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:post_order"`
	UpdatedAt int64
	UserID    uint64
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string  `gorm:"type:text"`
	ImagePath string  `gorm:"type:varchar(300)"`
	ThumbPath string  `gorm:"type:varchar(300)"`
}

// PubDate formats the immutable creation time for templates
func (p Post) PubDate() string {
	return time.Unix(p.CreatedAt, 0).Format("2 Jan 2006 15:04")
}

func PostByID(id uint64) (p Post, found bool) {
	if db.Instance.Preload("User").Preload("Group").First(&p, id).Error != nil {
		return Post{}, false
	}
	return p, true
}

func PostCount() (count int64) {
	db.Instance.Model(&Post{}).Count(&count)
	return
}
