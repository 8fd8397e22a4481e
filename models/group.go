package models

import "yatube/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupBySlug(slug string) (g Group, found bool) {
	if db.Instance.First(&g, "slug = ?", slug).Error != nil {
		return Group{}, false
	}
	return g, true
}

func GroupList() []Group {
	var groups []Group
	db.Instance.Order("title ASC").Find(&groups)
	return groups
}
