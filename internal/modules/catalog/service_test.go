package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) List(ctx context.Context, featuredOnly bool) ([]domain.Service, error) {
	args := m.Called(ctx, featuredOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_List_FeaturedOnly(t *testing.T) {
	repo := new(mockServiceRepo)
	repo.On("List", mock.Anything, true).Return([]domain.Service{
		{ID: 1, Title: "Bridal makeup", Featured: true},
	}, nil)

	items, err := NewService(repo).List(context.Background(), true)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, items[0].Featured)
	repo.AssertExpectations(t)
}

func TestService_Create_TrimsQuotedImageURL(t *testing.T) {
	repo := new(mockServiceRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.ImageURL == "https://example.com/service.jpg"
	})).Return(nil)

	_, err := NewService(repo).Create(context.Background(), ServiceRequest{
		Title:       "Glam session",
		Description: "Full glam",
		Price:       120,
		Duration:    60,
		Category:    "glam",
		ImageURL:    `"https://example.com/service.jpg"`,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(mockServiceRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewService(repo).Update(context.Background(), 99, ServiceRequest{
		Title:       "x",
		Description: "y",
		Duration:    30,
		Category:    "z",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockServiceRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := NewService(repo).Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
