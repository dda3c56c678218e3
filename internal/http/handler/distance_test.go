package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/service"
	serviceMocks "github.com/TonAldo48/matematch-sub001/internal/service/mocks"
)

var (
	origin      = model.Coordinates{Lat: 47.6062, Lng: -122.3321}
	destination = model.Coordinates{Lat: 47.6205, Lng: -122.3493}
)

const pair = "origin=47.6062,-122.3321&destination=47.6205,-122.3493"

func TestGetDistance(t *testing.T) {
	mockSvc := new(serviceMocks.MockDistanceService)
	app := fiber.New()
	app.Get("/distance", GetDistance(mockSvc))

	t.Run("defaults to driving", func(t *testing.T) {
		mockSvc.On("Distance", mock.Anything, origin, destination, model.ModeDriving).
			Return(&model.DistanceResult{DistanceMeters: 3200, Cached: true}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/distance?"+pair, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.DistanceResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 3200, result.DistanceMeters)
		assert.True(t, result.Cached)
	})

	t.Run("transit", func(t *testing.T) {
		mockSvc.On("Distance", mock.Anything, origin, destination, model.ModeTransit).
			Return(&model.DistanceResult{DistanceMeters: 4000}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/distance?"+pair+"&mode=transit", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("bad coordinates", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/distance?origin=north&destination=1,2", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ORIGIN", decodeError(t, resp).Error.Code)

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/distance?origin=1,2&destination=95,0", nil))
		assert.Equal(t, "INVALID_DESTINATION", decodeError(t, resp).Error.Code)
	})

	t.Run("bad mode", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/distance?"+pair+"&mode=flying", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_MODE", decodeError(t, resp).Error.Code)
	})

	t.Run("no route", func(t *testing.T) {
		mockSvc.On("Distance", mock.Anything, origin, destination, model.ModeWalking).
			Return(nil, service.ErrNoRoute).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/distance?"+pair+"&mode=walking", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "NO_ROUTE", decodeError(t, resp).Error.Code)
	})

	t.Run("timeout", func(t *testing.T) {
		mockSvc.On("Distance", mock.Anything, origin, destination, model.ModeBicycling).
			Return(nil, context.DeadlineExceeded).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/distance?"+pair+"&mode=bicycling", nil))
		assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	})
}

func TestGetCommute(t *testing.T) {
	mockSvc := new(serviceMocks.MockDistanceService)
	app := fiber.New()
	app.Get("/commute", GetCommute(mockSvc))

	mockSvc.On("Commute", mock.Anything, origin, destination).Return(&model.CommuteResult{
		Driving: model.CommuteLeg{Result: &model.DistanceResult{DurationSeconds: 600}},
		Transit: model.CommuteLeg{Error: "no route found"},
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/commute?"+pair, nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result model.CommuteResult
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 600, result.Driving.Result.DurationSeconds)
	assert.Nil(t, result.Transit.Result)
	assert.Equal(t, "no route found", result.Transit.Error)
}

func TestGeocode(t *testing.T) {
	mockSvc := new(serviceMocks.MockDistanceService)
	app := fiber.New()
	app.Get("/geocode", Geocode(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Geocode", mock.Anything, "Pike Place Market").Return([]model.GeocodeResult{
			{FormattedAddress: "Pike Place Market, Seattle", PlaceID: "p1", Location: origin},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/geocode?address=Pike+Place+Market", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data  []model.GeocodeResult `json:"data"`
			Total int                   `json:"total"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 1, body.Total)
		assert.Equal(t, "p1", body.Data[0].PlaceID)
	})

	t.Run("address required", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/geocode", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ADDRESS_REQUIRED", decodeError(t, resp).Error.Code)
	})
}
