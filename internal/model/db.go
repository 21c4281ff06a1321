package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&DailyLog{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&LogSection{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&EntityLink{}); err != nil {
		return err
	}

	return db.AutoMigrate(&Person{})
}
