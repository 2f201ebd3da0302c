package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestOFF(baseURL string) *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSearchByBarcodeTooShortRejectedBeforeRequest(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	_, err := svc.SearchByBarcode("1234567")
	assert.ErrorIs(t, err, ErrInvalidBarcode)
	assert.Equal(t, 0, requests)

	_, err = svc.SearchByBarcode("")
	assert.ErrorIs(t, err, ErrInvalidBarcode)
	assert.Equal(t, 0, requests)
}

func TestSearchByBarcodeNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 0}`))
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	_, err := svc.SearchByBarcode("40084513")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchByBarcodeNormalization(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/40084513.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// No name/brand/serving, numeric string calories under a later
		// synonym, protein under a non-preferred spelling.
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"nutriments": {
					"energy_kcal": "250.5",
					"protein": 12,
					"carbohydrates_100g": 30,
					"lipids": 8
				}
			}
		}`))
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	food, err := svc.SearchByBarcode("40084513")
	assert.NoError(t, err)

	assert.Equal(t, "Unknown Product", food.Name)
	assert.Equal(t, "Unknown Brand", food.Brand)
	assert.Equal(t, "100g", food.ServingSize)
	assert.InDelta(t, 250.5, food.Calories, 1e-9)
	assert.InDelta(t, 12, food.Protein, 1e-9)
	assert.InDelta(t, 30, food.Carbs, 1e-9)
	assert.InDelta(t, 8, food.Fats, 1e-9)
}

func TestSearchByBarcodeSynonymOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Both spellings present: the first key in the list must win.
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Granola",
				"nutriments": {
					"energy-kcal_100g": 450,
					"energy_100g": 1880,
					"fat_100g": 15,
					"fats": 99
				}
			}
		}`))
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	food, err := svc.SearchByBarcode("12345678")
	assert.NoError(t, err)
	assert.InDelta(t, 450, food.Calories, 1e-9)
	assert.InDelta(t, 15, food.Fats, 1e-9)
}

func TestSearchByBarcodeUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	_, err := svc.SearchByBarcode("40084513")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestSearchByNameReturnsTopThree(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "granola bar", r.URL.Query().Get("search_terms"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 57,
			"products": [
				{"product_name": "One", "nutriments": {"energy-kcal_100g": 100}},
				{"product_name": "Two", "nutriments": {"energy-kcal_100g": 200}},
				{"product_name": "Three", "nutriments": {"energy-kcal_100g": 300}},
				{"product_name": "Four", "nutriments": {"energy-kcal_100g": 400}}
			]
		}`))
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	foods, total, err := svc.SearchByName("granola bar")
	assert.NoError(t, err)
	assert.Equal(t, 57, total)
	assert.Len(t, foods, 3)
	assert.Equal(t, "One", foods[0].Name)
	assert.Equal(t, "Three", foods[2].Name)
	assert.InDelta(t, 300, foods[2].Calories, 1e-9)
	// Each candidate is normalized independently.
	assert.Equal(t, "Unknown Brand", foods[0].Brand)
	assert.Equal(t, "100g", foods[0].ServingSize)
}

func TestSearchByNameNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 0, "products": []}`))
	}))
	defer ts.Close()

	svc := newTestOFF(ts.URL)
	_, _, err := svc.SearchByName("definitely not a food")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
