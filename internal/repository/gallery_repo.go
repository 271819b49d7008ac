package repository

import (
	"context"
	"time"

	"makeupstudio/internal/domain"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type imageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Category  string    `gorm:"column:category"`
	AltText   string    `gorm:"column:alt_text"`
	ImageURL  *string   `gorm:"column:image_url"`
	ImagePath *string   `gorm:"column:image_path"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (imageModel) TableName() string { return "images" }

func toDomainGalleryImage(m imageModel) *domain.GalleryImage {
	return &domain.GalleryImage{
		ID:        m.ID,
		Title:     m.Title,
		Category:  m.Category,
		AltText:   m.AltText,
		Image:     domain.ImageRef{URL: deref(m.ImageURL), Path: deref(m.ImagePath)},
		CreatedAt: m.CreatedAt,
	}
}

func toGalleryModel(g *domain.GalleryImage) imageModel {
	return imageModel{
		ID:        g.ID,
		Title:     g.Title,
		Category:  g.Category,
		AltText:   g.AltText,
		ImageURL:  nullable(g.Image.URL),
		ImagePath: nullable(g.Image.Path),
		CreatedAt: g.CreatedAt,
	}
}

// List returns gallery images newest first, optionally narrowed to a category.
func (r *GalleryRepository) List(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []imageModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.GalleryImage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainGalleryImage(m))
	}
	return out, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error) {
	var m imageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainGalleryImage(m), nil
}

func (r *GalleryRepository) Create(ctx context.Context, g *domain.GalleryImage) error {
	m := toGalleryModel(g)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*g = *toDomainGalleryImage(m)
	return nil
}

func (r *GalleryRepository) Update(ctx context.Context, g *domain.GalleryImage) error {
	m := toGalleryModel(g)
	return r.db.WithContext(ctx).Model(&imageModel{}).Where("id = ?", g.ID).Updates(map[string]any{
		"title":      m.Title,
		"category":   m.Category,
		"alt_text":   m.AltText,
		"image_url":  m.ImageURL,
		"image_path": m.ImagePath,
	}).Error
}

func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&imageModel{}, id).Error
}
