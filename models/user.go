package models

import (
	"yatube/db"
	"yatube/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Name      string `gorm:"type:varchar(100)"`
	Username  string `gorm:"type:varchar(100);index:uniq_username,unique"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(name, username, email, plainTextPassword string) (u User, err error) {
	u.Name = name
	u.Username = username
	u.Email = email
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(email, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, found bool) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	return u, true
}
