package repository

import (
	"context"
	"time"

	"makeupstudio/internal/domain"

	"gorm.io/gorm"
)

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

type faqModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Question     string    `gorm:"column:question"`
	Answer       string    `gorm:"column:answer"`
	Category     string    `gorm:"column:category"`
	DisplayOrder int       `gorm:"column:display_order"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (faqModel) TableName() string { return "faqs" }

func toDomainFAQ(m faqModel) *domain.FAQ {
	return &domain.FAQ{
		ID:           m.ID,
		Question:     m.Question,
		Answer:       m.Answer,
		Category:     m.Category,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
	}
}

// List returns FAQs by display_order ascending, newest first within the same
// order value.
func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	var rows []faqModel
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.FAQ, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainFAQ(m))
	}
	return out, nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	var m faqModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainFAQ(m), nil
}

func (r *FAQRepository) Create(ctx context.Context, f *domain.FAQ) error {
	m := faqModel{
		Question:     f.Question,
		Answer:       f.Answer,
		Category:     f.Category,
		DisplayOrder: f.DisplayOrder,
		CreatedAt:    f.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*f = *toDomainFAQ(m)
	return nil
}

func (r *FAQRepository) Update(ctx context.Context, f *domain.FAQ) error {
	return r.db.WithContext(ctx).Model(&faqModel{}).Where("id = ?", f.ID).Updates(map[string]any{
		"question":      f.Question,
		"answer":        f.Answer,
		"category":      f.Category,
		"display_order": f.DisplayOrder,
	}).Error
}

func (r *FAQRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&faqModel{}, id).Error
}
