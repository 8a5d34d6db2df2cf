// Package db handles the connection to the backing relational store
package db

import (
	"fmt"

	"bitwise74/social-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database configured under database.driver and runs
// the automigrations. TranslateError is on so unique constraint
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func New() (*gorm.DB, error) {
	dsn := viper.GetString("database.dsn")

	var dial gorm.Dialector
	switch viper.GetString("database.driver") {
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.AuthToken{}, &model.FriendRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
