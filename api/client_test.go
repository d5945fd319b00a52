// api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/backoffice/config"
	"github.com/sellora/backoffice/models"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL:        baseURL,
			Token:          "test-token",
			RequestTimeout: 5,
			RateLimit:      1000,
			RateBurst:      1000,
		},
	}
}

func servicePayload() *ItemPayload {
	return &ItemPayload{
		Title:                 "Deep Cleaning Service",
		Description:           "desc",
		Type:                  models.ItemTypeService,
		CategoryID:            uuid.New(),
		SalesPrice:            "40.50",
		RegularPrice:          "60.00",
		Quantity:              "0",
		PricingModel:          "hourly",
		DeliveryMethod:        "on_site",
		EstimatedDeliveryTime: "2 hours 15 minutes",
		AvailableDays:         []string{"monday", "friday"},
		AvailableFrom:         "08:00",
		AvailableTo:           "16:00",
		Files: []models.PendingFile{
			{Name: "a.jpg", Data: []byte{0xFF, 0xD8, 0xFF, 0xE0}},
			{Name: "b.jpg", Data: []byte{0xFF, 0xD8, 0xFF, 0xE0}},
		},
	}
}

func TestCreateItemSendsMultipartFields(t *testing.T) {
	payload := servicePayload()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(32<<20))

		assert.Equal(t, "Deep Cleaning Service", r.FormValue("title"))
		assert.Equal(t, "services", r.FormValue("type"))
		assert.Equal(t, payload.CategoryID.String(), r.FormValue("category_id"))
		assert.Equal(t, "40.50", r.FormValue("sales_price"))
		assert.Equal(t, "60.00", r.FormValue("regular_price"))
		assert.Equal(t, "0", r.FormValue("quantity"))
		assert.Equal(t, "hourly", r.FormValue("pricing_model"))
		assert.Equal(t, "on_site", r.FormValue("delivery_method"))
		assert.Equal(t, "2 hours 15 minutes", r.FormValue("estimated_delivery_time"))
		assert.Equal(t, "08:00", r.FormValue("available_from"))
		assert.Equal(t, "16:00", r.FormValue("available_to"))

		var days []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("available_days")), &days))
		assert.Equal(t, []string{"monday", "friday"}, days)

		assert.Len(t, r.MultipartForm.File["images[]"], 2)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Item{ID: uuid.New(), Title: "Deep Cleaning Service"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	item, err := client.CreateItem(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning Service", item.Title)
}

func TestCreateItemProductOmitsServiceFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))

		assert.Equal(t, "products", r.FormValue("type"))
		_, hasDays := r.MultipartForm.Value["available_days"]
		assert.False(t, hasDays)
		_, hasModel := r.MultipartForm.Value["pricing_model"]
		assert.False(t, hasModel)

		json.NewEncoder(w).Encode(models.Item{ID: uuid.New()})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.CreateItem(context.Background(), &ItemPayload{
		Title:      "Handmade Wooden Chair",
		Type:       models.ItemTypeProduct,
		CategoryID: uuid.New(),
		Quantity:   "10",
	})

	require.NoError(t, err)
}

func TestUpdateItemUsesPutWithID(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/items/"+id.String(), r.URL.Path)
		json.NewEncoder(w).Encode(models.Item{ID: id})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	item, err := client.UpdateItem(context.Background(), id, &ItemPayload{
		Type: models.ItemTypeProduct,
	})

	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
}

func TestDeleteItemImage(t *testing.T) {
	itemID := uuid.New()
	imageID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, fmt.Sprintf("/items/%s/images/%s", itemID, imageID), r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	assert.NoError(t, client.DeleteItemImage(context.Background(), itemID, imageID))
}

func TestFetchCategories(t *testing.T) {
	parent := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Equal(t, "services", r.URL.Query().Get("type"))
		json.NewEncoder(w).Encode([]models.Category{
			{ID: parent, Name: "Cleaning"},
			{ID: uuid.New(), Name: "Windows", ParentID: parent},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	categories, err := client.FetchCategories(context.Background(), models.ItemTypeService)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Cleaning", categories[0].Name)
	assert.Equal(t, parent, categories[1].ParentID)
}

func TestErrorMessageExtractedFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"title has already been taken"}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.CreateItem(context.Background(), &ItemPayload{Type: models.ItemTypeProduct})

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Equal(t, "title has already been taken", statusErr.Message)
}

func TestErrorFallbackWhenBodyIsNotConventional(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "unexpected crash")
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	err := client.DeleteItemImage(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, genericErrorMessage, statusErr.Message)
}

func TestCachedCategoryResponsesSkipTheServer(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Cache-Control", "max-age=60")
		json.NewEncoder(w).Encode([]models.Category{{ID: uuid.New(), Name: "Furniture"}})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.FetchCategories(context.Background(), models.ItemTypeProduct)
	require.NoError(t, err)
	_, err = client.FetchCategories(context.Background(), models.ItemTypeProduct)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}
