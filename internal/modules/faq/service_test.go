package faq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type mockFAQRepo struct {
	mock.Mock
}

func (m *mockFAQRepo) List(ctx context.Context) ([]domain.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FAQ), args.Error(1)
}

func (m *mockFAQRepo) GetByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FAQ), args.Error(1)
}

func (m *mockFAQRepo) Create(ctx context.Context, f *domain.FAQ) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFAQRepo) Update(ctx context.Context, f *domain.FAQ) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFAQRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_DefaultsDisplayOrderToZero(t *testing.T) {
	repo := new(mockFAQRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.FAQ) bool {
		return f.DisplayOrder == 0 && f.Question == "Do you travel?"
	})).Return(nil)

	_, err := NewService(repo).Create(context.Background(), FAQRequest{
		Question: "Do you travel?",
		Answer:   "Yes, within the metro area.",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(mockFAQRepo)
	repo.On("GetByID", mock.Anything, int64(12)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewService(repo).Update(context.Background(), 12, FAQRequest{
		Question: "q",
		Answer:   "a",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
