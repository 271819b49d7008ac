package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this service reads and writes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminUserModel{},
		&imageModel{},
		&serviceModel{},
		&faqModel{},
		&bookingModel{},
		&contactSubmissionModel{},
	)
}
