package utils

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDatabase opens the MySQL connection. The handle is passed explicitly
// to handlers rather than kept as a package global.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}
