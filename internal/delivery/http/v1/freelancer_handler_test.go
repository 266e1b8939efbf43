package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelancima-backend/internal/delivery/http/middleware"
	v1 "freelancima-backend/internal/delivery/http/v1"
	"freelancima-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBrowseUsecase struct {
	mock.Mock
}

func (m *MockBrowseUsecase) BrowseAll(ctx context.Context) (*domain.BrowseResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrowseResponse), args.Error(1)
}

func (m *MockBrowseUsecase) BrowseCategory(ctx context.Context, category domain.Category) (*domain.BrowseResponse, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrowseResponse), args.Error(1)
}

func (m *MockBrowseUsecase) SearchFreelancers(ctx context.Context, keyword string) (*domain.BrowseResponse, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrowseResponse), args.Error(1)
}

func (m *MockBrowseUsecase) LatestFreelancers(ctx context.Context, limit int) (*domain.BrowseResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrowseResponse), args.Error(1)
}

func newTestRouter(uc domain.BrowseUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewFreelancerHandler(r.Group("/v1"), uc)
	return r
}

func doGet(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestBrowseAllEnvelope(t *testing.T) {
	uc := new(MockBrowseUsecase)
	grouped := domain.CategorizedFreelancers{}
	for _, c := range domain.Categories() {
		grouped[c] = []domain.Freelancer{}
	}
	grouped[domain.CategoryWebDevelopment] = []domain.Freelancer{
		{ID: 1, Username: "dev", Category: domain.CategoryWebDevelopment},
	}
	uc.On("BrowseAll", mock.Anything).Return(&domain.BrowseResponse{
		Metadata:   domain.Metadata{LastUpdated: "2025-05-07 12:46:36", UpdatedBy: "tester"},
		Categories: grouped,
	}, nil).Once()

	w := doGet(newTestRouter(uc), "/v1/freelancers?action=all")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Metadata   domain.Metadata                      `json:"metadata"`
		Categories map[string][]map[string]json.RawMessage `json:"categories"`
		Latest     []json.RawMessage                    `json:"latest_freelancers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "tester", body.Metadata.UpdatedBy)
	assert.Nil(t, body.Latest)
	assert.Len(t, body.Categories, 5)
	for cat := range body.Categories {
		assert.True(t, domain.IsKnownCategory(domain.Category(cat)), "unexpected bucket %q", cat)
	}
}

func TestBrowseActionDispatch(t *testing.T) {
	t.Run("Defaults to all", func(t *testing.T) {
		uc := new(MockBrowseUsecase)
		uc.On("BrowseAll", mock.Anything).Return(&domain.BrowseResponse{}, nil).Once()

		w := doGet(newTestRouter(uc), "/v1/freelancers")
		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Search forwards the keyword", func(t *testing.T) {
		uc := new(MockBrowseUsecase)
		uc.On("SearchFreelancers", mock.Anything, "python dev").
			Return(&domain.BrowseResponse{}, nil).Once()

		w := doGet(newTestRouter(uc), "/v1/freelancers?action=search&search=python+dev")
		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Latest forwards the limit and omits categories", func(t *testing.T) {
		uc := new(MockBrowseUsecase)
		uc.On("LatestFreelancers", mock.Anything, 5).Return(&domain.BrowseResponse{
			Latest: make([]domain.Freelancer, 5),
		}, nil).Once()

		w := doGet(newTestRouter(uc), "/v1/freelancers?action=latest&limit=5")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "latest_freelancers")
		assert.NotContains(t, body, "categories")
		uc.AssertExpectations(t)
	})

	t.Run("Unknown action is a 400 without reaching the usecase", func(t *testing.T) {
		uc := new(MockBrowseUsecase)

		w := doGet(newTestRouter(uc), "/v1/freelancers?action=bogus")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "BrowseAll")
	})

	t.Run("Non-numeric limit is a 400", func(t *testing.T) {
		uc := new(MockBrowseUsecase)

		w := doGet(newTestRouter(uc), "/v1/freelancers?action=latest&limit=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "LatestFreelancers")
	})
}

func TestBrowseStoreFailureEnvelope(t *testing.T) {
	uc := new(MockBrowseUsecase)
	uc.On("BrowseAll", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	w := doGet(newTestRouter(uc), "/v1/freelancers?action=all")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.NotEmpty(t, body.Message)
	// Internal details never reach the client.
	assert.NotContains(t, body.Message, "dial tcp")
}
