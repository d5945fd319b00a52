// form/helpers_test.go
package form

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellora/backoffice/api"
	"github.com/sellora/backoffice/cache"
	"github.com/sellora/backoffice/config"
	"github.com/sellora/backoffice/models"
)

func testMediaConfig() config.MediaConfig {
	return config.MediaConfig{
		MinCount:     2,
		MaxCount:     4,
		MaxFileSize:  2 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
}

func testCache() *cache.TTLCache {
	return cache.New(5*time.Minute, 16)
}

func jpegBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00})
	return data
}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	return data
}

func gifBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("GIF89a"))
	return data
}

type stubDeleter struct {
	err   error
	calls int
}

func (d *stubDeleter) DeleteItemImage(ctx context.Context, itemID, imageID uuid.UUID) error {
	d.calls++
	return d.err
}

type stubCategoryAPI struct {
	categories []models.Category
	err        error
	calls      int
}

func (s *stubCategoryAPI) FetchCategories(ctx context.Context, itemType models.ItemType) ([]models.Category, error) {
	s.calls++
	return s.categories, s.err
}

type stubItemAPI struct {
	createCalls int
	updateCalls int
	lastPayload *api.ItemPayload
	lastID      uuid.UUID
	item        *models.Item
	err         error
	block       chan struct{}
}

func (s *stubItemAPI) CreateItem(ctx context.Context, payload *api.ItemPayload) (*models.Item, error) {
	s.createCalls++
	s.lastPayload = payload
	if s.block != nil {
		<-s.block
	}
	return s.item, s.err
}

func (s *stubItemAPI) UpdateItem(ctx context.Context, id uuid.UUID, payload *api.ItemPayload) (*models.Item, error) {
	s.updateCalls++
	s.lastID = id
	s.lastPayload = payload
	if s.block != nil {
		<-s.block
	}
	return s.item, s.err
}

// newProductDraft builds a controller that passes validation as a physical
// product: title, 120-char description, two pending JPEGs, a childless
// category, sales 50 < regular 75, quantity 10.
func newProductDraft() *FormController {
	media := NewMediaManager(testMediaConfig(), &stubDeleter{})
	media.AddFiles([]models.PendingFile{
		{Name: "front.jpg", Data: jpegBytes(300 * 1024)},
		{Name: "back.jpg", Data: jpegBytes(300 * 1024)},
	})

	category := uuid.New()
	c := NewFormController(media, nil)
	c.Title = "Handmade Wooden Chair"
	c.Description = strings.Repeat("solid oak, hand finished ", 5) // 125 chars
	c.Categories = []models.CategoryNode{{ID: category, Name: "Furniture"}}
	c.CategoryID = category
	c.SalesPrice = "50.00"
	c.RegularPrice = "75.00"
	c.Quantity = "10"

	return c
}

// newServiceDraft builds a controller that passes validation as a service.
func newServiceDraft() *FormController {
	c := newProductDraft()
	c.ItemType = models.ItemTypeService
	category := uuid.New()
	c.Categories = []models.CategoryNode{{ID: category, Name: "Cleaning"}}
	c.CategoryID = category
	c.PricingModel = "fixed"
	c.DeliveryMethod = "on_site"
	c.DeliveryHours = "2"
	c.DeliveryMinutes = "15"
	c.AvailableDays = []string{"monday", "wednesday"}
	c.AvailableFrom = "09:00"
	c.AvailableTo = "17:00"

	return c
}
