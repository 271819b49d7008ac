package site

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/storage"
)

type mockProfileReader struct {
	mock.Mock
}

func (m *mockProfileReader) GetPrimaryOrFirst(ctx context.Context, primaryEmail string) (*domain.AdminProfile, error) {
	args := m.Called(ctx, primaryEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminProfile), args.Error(1)
}

type mockServiceReader struct {
	mock.Mock
}

func (m *mockServiceReader) List(ctx context.Context, featuredOnly bool) ([]domain.Service, error) {
	args := m.Called(ctx, featuredOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type mockGalleryReader struct {
	mock.Mock
}

func (m *mockGalleryReader) List(ctx context.Context, category string) ([]domain.GalleryImage, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GalleryImage), args.Error(1)
}

type mockFAQReader struct {
	mock.Mock
}

func (m *mockFAQReader) List(ctx context.Context) ([]domain.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FAQ), args.Error(1)
}

type staticStore struct{}

func (staticStore) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	return "", nil
}
func (staticStore) PublicURL(path string) string           { return "/static/uploads/" + path }
func (staticStore) Remove(ctx context.Context, p []string) error { return nil }

func newSiteService(profiles *mockProfileReader, services *mockServiceReader, gallery *mockGalleryReader, faqs *mockFAQReader) *Service {
	return NewService(profiles, services, gallery, faqs, storage.NewResolver(staticStore{}), "artist@example.com")
}

func TestService_About_FallbackOnError(t *testing.T) {
	profiles := new(mockProfileReader)
	profiles.On("GetPrimaryOrFirst", mock.Anything, "artist@example.com").Return(nil, errors.New("db down"))

	out := newSiteService(profiles, new(mockServiceReader), new(mockGalleryReader), new(mockFAQReader)).
		About(context.Background())

	assert.Equal(t, fallbackAbout, out)
}

func TestService_About_PerFieldFallback(t *testing.T) {
	profiles := new(mockProfileReader)
	profiles.On("GetPrimaryOrFirst", mock.Anything, "artist@example.com").Return(&domain.AdminProfile{
		Email:       "artist@example.com",
		Bio:         "Custom bio",
		AboutImage1: domain.ImageRef{URL: `"https://example.com/me.jpg"`},
	}, nil)

	out := newSiteService(profiles, new(mockServiceReader), new(mockGalleryReader), new(mockFAQReader)).
		About(context.Background())

	assert.Equal(t, "Custom bio", out.Bio)
	assert.Equal(t, fallbackAbout.Bio2, out.Bio2)
	assert.Equal(t, "https://example.com/me.jpg", out.AboutImage1)
	assert.Equal(t, fallbackAbout.AboutImage2, out.AboutImage2)
	assert.Equal(t, "artist@example.com", out.Email)
}

func TestService_About_ResolvesStoredPath(t *testing.T) {
	profiles := new(mockProfileReader)
	profiles.On("GetPrimaryOrFirst", mock.Anything, "artist@example.com").Return(&domain.AdminProfile{
		Email:       "artist@example.com",
		AboutImage1: domain.ImageRef{URL: "https://stale.example.com/x.jpg", Path: "about/current.jpg"},
	}, nil)

	out := newSiteService(profiles, new(mockServiceReader), new(mockGalleryReader), new(mockFAQReader)).
		About(context.Background())

	assert.Equal(t, "/static/uploads/about/current.jpg", out.AboutImage1)
}

func TestService_Gallery_FallbackWhenEmpty(t *testing.T) {
	gallery := new(mockGalleryReader)
	gallery.On("List", mock.Anything, "").Return([]domain.GalleryImage{}, nil)

	out := newSiteService(new(mockProfileReader), new(mockServiceReader), gallery, new(mockFAQReader)).
		Gallery(context.Background(), "")

	assert.Equal(t, fallbackGallery, out)
}

func TestService_Services_FallbackOnError(t *testing.T) {
	services := new(mockServiceReader)
	services.On("List", mock.Anything, false).Return(nil, errors.New("db down"))

	out := newSiteService(new(mockProfileReader), services, new(mockGalleryReader), new(mockFAQReader)).
		Services(context.Background())

	assert.Equal(t, fallbackServices, out)
}

func TestService_FAQs_PassThrough(t *testing.T) {
	faqs := new(mockFAQReader)
	faqs.On("List", mock.Anything).Return([]domain.FAQ{
		{ID: 1, Question: "Q", Answer: "A", Category: "Booking"},
	}, nil)

	out := newSiteService(new(mockProfileReader), new(mockServiceReader), new(mockGalleryReader), faqs).
		FAQs(context.Background())

	assert.Len(t, out, 1)
	assert.Equal(t, "Q", out[0].Question)
}
