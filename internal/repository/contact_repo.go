package repository

import (
	"context"
	"time"

	"makeupstudio/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactSubmissionModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Subject   *string   `gorm:"column:subject"`
	Message   string    `gorm:"column:message"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (contactSubmissionModel) TableName() string { return "contact_submissions" }

func (r *ContactRepository) Create(ctx context.Context, s *domain.ContactSubmission) error {
	m := contactSubmissionModel{
		Name:      s.Name,
		Email:     s.Email,
		Phone:     nullable(s.Phone),
		Subject:   nullable(s.Subject),
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	return nil
}
