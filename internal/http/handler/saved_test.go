package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository/memory"
	"github.com/TonAldo48/matematch-sub001/internal/service"
	serviceMocks "github.com/TonAldo48/matematch-sub001/internal/service/mocks"
)

func TestSavedListings(t *testing.T) {
	mockSvc := new(serviceMocks.MockSavedService)
	app := fiber.New()
	app.Get("/users/:id/saved", ListSaved(mockSvc))
	app.Post("/users/:id/saved", SaveListing(mockSvc))
	app.Get("/users/:id/saved/:listingId", SavedStatus(mockSvc))
	app.Delete("/users/:id/saved/:listingId", UnsaveListing(mockSvc))
	id := uuid.New().String()

	t.Run("save", func(t *testing.T) {
		mockSvc.On("Save", mock.Anything, id, mock.MatchedBy(func(l model.Listing) bool {
			return l.ID == "42" && l.Title == "Loft" && l.Price.Rate == 99
		})).Return(&model.SavedListing{UserID: id, ListingID: "42", SavedAt: time.Now()}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/users/"+id+"/saved",
			`{"id":"42","title":"Loft","price":{"rate":99}}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("list", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, id).Return([]model.SavedListing{{ListingID: "42"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/"+id+"/saved", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data  []model.SavedListing `json:"data"`
			Total int                  `json:"total"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 1, body.Total)
	})

	t.Run("status", func(t *testing.T) {
		mockSvc.On("IsSaved", mock.Anything, id, "42").Return(true, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/"+id+"/saved/42", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body savedStatusResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, savedStatusResponse{ListingID: "42", Saved: true}, body)
	})

	t.Run("unsave", func(t *testing.T) {
		mockSvc.On("Unsave", mock.Anything, id, "42").Return(nil).Once()
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/users/"+id+"/saved/42", nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		mockSvc.On("Unsave", mock.Anything, id, "43").Return(service.ErrNotFound).Once()
		resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/users/"+id+"/saved/43", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid listing id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/users/"+id+"/saved/bad%20id", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LISTING_ID", decodeError(t, resp).Error.Code)
	})
}

func TestSavedListings_SavedIDsCanBeDeleted(t *testing.T) {
	store := memory.New()
	id := uuid.New().String()
	_, err := store.Profiles().Create(context.Background(), &model.Profile{ID: id, Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	svc := service.NewSavedService(store.Profiles(), store.SavedListings())
	app := fiber.New()
	app.Post("/users/:id/saved", SaveListing(svc))
	app.Delete("/users/:id/saved/:listingId", UnsaveListing(svc))

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/users/"+id+"/saved", `{"id":"abc.def","title":"Loft"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)

	resp, _ = app.Test(jsonRequest(http.MethodPost, "/users/"+id+"/saved", `{"id":"abc-def_1","title":"Loft"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/users/"+id+"/saved/abc-def_1", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestInterests(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterestService)
	app := fiber.New()
	app.Get("/listings/:listingId/interests", ListListingInterests(mockSvc))
	app.Post("/listings/:listingId/interests", ExpressInterest(mockSvc))
	app.Delete("/listings/:listingId/interests/:userId", WithdrawInterest(mockSvc))
	app.Get("/users/:id/interests", ListUserInterests(mockSvc))
	userID := uuid.New().String()

	t.Run("express", func(t *testing.T) {
		mockSvc.On("Express", mock.Anything, "42", userID, "quiet").
			Return(&model.ListingInterest{UserID: userID, ListingID: "42", Note: "quiet"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/listings/42/interests",
			`{"user_id":"`+userID+`","note":"quiet"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("express without user", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/listings/42/interests", `{}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("express with malformed user id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/listings/42/interests", `{"user_id":"not-a-uuid"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		mockSvc.AssertNotCalled(t, "Express", mock.Anything, "42", "not-a-uuid", mock.Anything)
	})

	t.Run("for listing", func(t *testing.T) {
		mockSvc.On("ForListing", mock.Anything, "42").Return(&service.ListingInterestSummary{
			ListingID:  "42",
			Count:      1,
			Interests:  []model.ListingInterest{{UserID: userID, ListingID: "42"}},
			Interested: []model.Profile{{ID: userID, Name: "Ada"}},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/listings/42/interests", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.ListingInterestSummary
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, "Ada", result.Interested[0].Name)
	})

	t.Run("for user", func(t *testing.T) {
		mockSvc.On("ForUser", mock.Anything, userID).Return([]model.ListingInterest{{ListingID: "42"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/"+userID+"/interests", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("withdraw", func(t *testing.T) {
		mockSvc.On("Withdraw", mock.Anything, "42", userID).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/listings/42/interests/"+userID, nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/listings/42/interests/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
