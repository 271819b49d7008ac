package repository

import (
	"context"
	"time"

	"makeupstudio/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Duration    int       `gorm:"column:duration"`
	Category    string    `gorm:"column:category"`
	ImageURL    *string   `gorm:"column:image_url"`
	Featured    bool      `gorm:"column:featured"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Duration:    m.Duration,
		Category:    m.Category,
		ImageURL:    deref(m.ImageURL),
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	return serviceModel{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    s.Category,
		ImageURL:    nullable(s.ImageURL),
		Featured:    s.Featured,
		CreatedAt:   s.CreatedAt,
	}
}

// List returns services newest first; featuredOnly narrows to the flagged set.
func (r *ServiceRepository) List(ctx context.Context, featuredOnly bool) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var rows []serviceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	return r.db.WithContext(ctx).Model(&serviceModel{}).Where("id = ?", s.ID).Updates(map[string]any{
		"title":       m.Title,
		"description": m.Description,
		"price":       m.Price,
		"duration":    m.Duration,
		"category":    m.Category,
		"image_url":   m.ImageURL,
		"featured":    m.Featured,
	}).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&serviceModel{}, id).Error
}
