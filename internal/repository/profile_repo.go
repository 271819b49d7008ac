package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"makeupstudio/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type adminUserModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Email           string    `gorm:"column:email;uniqueIndex"`
	PasswordHash    string    `gorm:"column:password_hash"`
	Bio             *string   `gorm:"column:bio"`
	Bio2            *string   `gorm:"column:bio_2"`
	AboutImage1     *string   `gorm:"column:about_image_1"`
	AboutImage2     *string   `gorm:"column:about_image_2"`
	AboutImage1Path *string   `gorm:"column:about_image_1_path"`
	AboutImage2Path *string   `gorm:"column:about_image_2_path"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (adminUserModel) TableName() string { return "admin_users" }

func toDomainProfile(m adminUserModel) *domain.AdminProfile {
	return &domain.AdminProfile{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Bio:          deref(m.Bio),
		Bio2:         deref(m.Bio2),
		AboutImage1:  domain.ImageRef{URL: deref(m.AboutImage1), Path: deref(m.AboutImage1Path)},
		AboutImage2:  domain.ImageRef{URL: deref(m.AboutImage2), Path: deref(m.AboutImage2Path)},
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProfileModel(p *domain.AdminProfile) adminUserModel {
	return adminUserModel{
		ID:              p.ID,
		Email:           strings.ToLower(strings.TrimSpace(p.Email)),
		PasswordHash:    p.PasswordHash,
		Bio:             nullable(p.Bio),
		Bio2:            nullable(p.Bio2),
		AboutImage1:     nullable(p.AboutImage1.URL),
		AboutImage2:     nullable(p.AboutImage2.URL),
		AboutImage1Path: nullable(p.AboutImage1.Path),
		AboutImage2Path: nullable(p.AboutImage2.Path),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.AdminProfile) error {
	m := toProfileModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProfile(m)
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.AdminProfile, error) {
	var m adminUserModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminProfile, error) {
	var m adminUserModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

func (r *ProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&adminUserModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

// GetPrimaryOrFirst returns the profile the public site shows: the one
// matching the configured primary email, else the oldest profile on record.
func (r *ProfileRepository) GetPrimaryOrFirst(ctx context.Context, primaryEmail string) (*domain.AdminProfile, error) {
	if primaryEmail != "" {
		p, err := r.GetByEmail(ctx, primaryEmail)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var m adminUserModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

// UpdateFields applies a partial column update; values may be nil to clear.
func (r *ProfileRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&adminUserModel{}).Where("id = ?", id).Updates(fields).Error
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
