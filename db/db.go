package db

import (
	"yatube/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
