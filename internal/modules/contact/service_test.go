package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"makeupstudio/internal/domain"
)

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type recordingNotifier struct {
	received []string
}

func (n *recordingNotifier) BookingConfirmation(b *domain.Booking) {}
func (n *recordingNotifier) BookingReminder(b *domain.Booking)    {}
func (n *recordingNotifier) ContactReceived(s *domain.ContactSubmission) {
	n.received = append(n.received, s.Email)
}

func TestService_Submit_StoresLocally(t *testing.T) {
	repo := new(mockContactRepo)
	notifier := &recordingNotifier{}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.ContactSubmission) bool {
		return s.Email == "client@example.com" && s.Message == "Hi there"
	})).Return(nil)

	err := NewService(repo, notifier, "").Submit(context.Background(), SubmitRequest{
		Name:    "Client",
		Email:   "client@example.com",
		Message: "Hi there",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"client@example.com"}, notifier.received)
	repo.AssertExpectations(t)
}

func TestService_Submit_RelaysWhenConfigured(t *testing.T) {
	repo := new(mockContactRepo)

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewService(repo, &recordingNotifier{}, srv.URL).Submit(context.Background(), SubmitRequest{
		Name:    "Client",
		Email:   "client@example.com",
		Subject: "Booking question",
		Message: "Hi there",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Booking question", got["subject"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_RelayFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	err := NewService(new(mockContactRepo), notifier, srv.URL).Submit(context.Background(), SubmitRequest{
		Name:    "Client",
		Email:   "client@example.com",
		Message: "Hi there",
	})

	assert.Error(t, err)
	assert.Empty(t, notifier.received)
}
