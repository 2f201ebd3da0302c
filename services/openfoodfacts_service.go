package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// OpenFoodFactsService looks up food data by name or barcode against the
// OpenFoodFacts API and normalizes the loosely structured product records
// into the catalog shape.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidBarcode  = errors.New("invalid barcode format")
)

// FoodData is a lookup candidate normalized into the catalog shape.
type FoodData struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	ServingSize string  `json:"servingSize"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
}

// How many candidates a name search returns at most.
const maxSearchResults = 3

// OpenFoodFacts is inconsistent about which spelling of each nutrient key a
// product carries, so every macro is resolved through an ordered synonym
// list; the first present numeric value wins.
var (
	calorieKeys = []string{"energy-kcal_100g", "energy_kcal_100g", "energy-kcal", "energy_kcal", "energy_100g"}
	proteinKeys = []string{"proteins_100g", "proteins", "protein_100g", "protein"}
	carbKeys    = []string{"carbohydrates_100g", "carbohydrates", "carbs_100g", "carbs"}
	fatKeys     = []string{"fat_100g", "fat", "fats_100g", "fats", "lipids_100g", "lipids"}
)

type offProduct struct {
	ProductName string                 `json:"product_name"`
	Brands      string                 `json:"brands"`
	ServingSize string                 `json:"serving_size"`
	Nutriments  map[string]interface{} `json:"nutriments"`
}

type offSearchResponse struct {
	Count    int          `json:"count"`
	Products []offProduct `json:"products"`
}

type offProductResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

// SearchByName returns up to three normalized candidates for a freeform food
// name plus the total candidate count the source reported. No matches yield
// ErrProductNotFound.
func (s *OpenFoodFactsService) SearchByName(name string) ([]FoodData, int, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1",
		s.baseURL, url.QueryEscape(name),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to call OpenFoodFacts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read OpenFoodFacts search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("OpenFoodFacts search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, 0, fmt.Errorf("failed to parse OpenFoodFacts search JSON: %w", err)
	}
	if len(sr.Products) == 0 {
		return nil, 0, ErrProductNotFound
	}

	n := len(sr.Products)
	if n > maxSearchResults {
		n = maxSearchResults
	}
	results := make([]FoodData, 0, n)
	for _, p := range sr.Products[:n] {
		results = append(results, normalizeProduct(p))
	}
	return results, sr.Count, nil
}

// SearchByBarcode looks up a single product by barcode. The barcode is
// checked before any request goes out; an unknown code yields
// ErrProductNotFound so callers can tell it apart from a source failure.
func (s *OpenFoodFactsService) SearchByBarcode(barcode string) (*FoodData, error) {
	if len(barcode) < 8 {
		return nil, ErrInvalidBarcode
	}

	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(barcode))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenFoodFacts product API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenFoodFacts product response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenFoodFacts product API error %d: %s", resp.StatusCode, string(body))
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse OpenFoodFacts product JSON: %w", err)
	}
	if pr.Product == nil || pr.Status == 0 {
		return nil, ErrProductNotFound
	}

	food := normalizeProduct(*pr.Product)
	return &food, nil
}

// normalizeProduct maps one source record into the catalog shape. Missing
// descriptive fields fall back to placeholders rather than failing the
// lookup; missing nutrients resolve to zero.
func normalizeProduct(p offProduct) FoodData {
	food := FoodData{
		Name:        p.ProductName,
		Brand:       p.Brands,
		ServingSize: p.ServingSize,
		Calories:    nutrientValue(p.Nutriments, calorieKeys),
		Protein:     nutrientValue(p.Nutriments, proteinKeys),
		Carbs:       nutrientValue(p.Nutriments, carbKeys),
		Fats:        nutrientValue(p.Nutriments, fatKeys),
	}
	if food.Name == "" {
		food.Name = "Unknown Product"
	}
	if food.Brand == "" {
		food.Brand = "Unknown Brand"
	}
	if food.ServingSize == "" {
		food.ServingSize = "100g"
	}
	return food
}

// nutrientValue walks the synonym list in order and returns the first value
// that parses as a number. The source mixes numbers and numeric strings.
func nutrientValue(nutriments map[string]interface{}, keys []string) float64 {
	for _, key := range keys {
		v, ok := nutriments[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}
