// form/controller.go
package form

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/sellora/backoffice/models"
)

// FormController owns every mutable field of one item draft. Field values
// are kept as the strings the form holds; nothing is parsed until
// Validate. One controller exists per editing session and its state never
// leaves the session except through the submission pipeline.
type FormController struct {
	ItemID   uuid.UUID // Nil while creating
	ItemType models.ItemType

	Title       string
	Description string

	SalesPrice   string
	RegularPrice string
	Quantity     string

	CategoryID      uuid.UUID
	ChildCategoryID uuid.UUID
	Categories      []models.CategoryNode

	PricingModel    string
	DeliveryMethod  string
	DeliveryHours   string
	DeliveryMinutes string
	AvailableDays   []string
	AvailableFrom   string
	AvailableTo     string

	Media *MediaManager

	resolver *CategoryResolver
}

func NewFormController(media *MediaManager, resolver *CategoryResolver) *FormController {
	return &FormController{
		ItemType: models.ItemTypeProduct,
		Media:    media,
		resolver: resolver,
	}
}

// Seed fills the draft from a persisted item, including re-parsing the
// stored delivery-time phrase back into its hour and minute components.
func (c *FormController) Seed(item *models.Item) {
	if item == nil {
		return
	}

	c.ItemID = item.ID
	c.ItemType = item.Type
	c.Title = item.Title
	c.Description = item.Description
	c.SalesPrice = strconv.FormatFloat(item.SalesPrice, 'f', -1, 64)
	c.RegularPrice = strconv.FormatFloat(item.RegularPrice, 'f', -1, 64)
	c.Quantity = strconv.Itoa(item.Quantity)
	c.CategoryID = item.CategoryID
	c.ChildCategoryID = item.ChildCategoryID
	c.PricingModel = item.PricingModel
	c.DeliveryMethod = item.DeliveryMethod
	c.DeliveryHours, c.DeliveryMinutes = ParseDeliveryTime(item.EstimatedDeliveryTime)
	c.AvailableDays = append([]string(nil), item.AvailableDays...)
	c.AvailableFrom = item.AvailableFrom
	c.AvailableTo = item.AvailableTo

	if c.Media != nil {
		c.Media.SeedExisting(item.ID, item.Images)
	}
	if c.resolver != nil {
		c.resolver.Reset()
	}
}

// SetItemType switches the draft between product and service. Fields of
// the other type are kept as entered; only the category selection resets,
// since the two types have disjoint trees.
func (c *FormController) SetItemType(itemType models.ItemType) {
	if itemType == c.ItemType {
		return
	}

	c.ItemType = itemType
	c.CategoryID = uuid.Nil
	c.ChildCategoryID = uuid.Nil
	c.Categories = nil

	if c.resolver != nil {
		c.resolver.Reset()
	}
}

// SetCategory records a manual parent selection and clears any child
// choice. A manual edit pins the selection against late tree loads.
func (c *FormController) SetCategory(id uuid.UUID) {
	if c.resolver != nil {
		c.resolver.MarkResolved()
	}
	c.CategoryID = id
	c.ChildCategoryID = uuid.Nil
}

func (c *FormController) SetChildCategory(id uuid.UUID) {
	if c.resolver != nil {
		c.resolver.MarkResolved()
	}
	c.ChildCategoryID = id
}

func (c *FormController) SetDeliveryTime(hours, minutes string) {
	c.DeliveryHours = hours
	c.DeliveryMinutes = minutes
}

// ToggleDay adds the weekday to the available set, or removes it if
// already present.
func (c *FormController) ToggleDay(day string) {
	for i, d := range c.AvailableDays {
		if d == day {
			c.AvailableDays = append(c.AvailableDays[:i], c.AvailableDays[i+1:]...)
			return
		}
	}
	c.AvailableDays = append(c.AvailableDays, day)
}

// DeliveryTimeString derives the combined phrase from the hour and minute
// components, e.g. "2 hours 15 minutes".
func (c *FormController) DeliveryTimeString() string {
	return FormatDeliveryTime(c.DeliveryHours, c.DeliveryMinutes)
}

// Discard releases session-local resources. Stored-image deletions already
// confirmed are server-side and not undone.
func (c *FormController) Discard() {
	if c.Media != nil {
		c.Media.ReleaseAll()
	}
}

func (c *FormController) selectedNode() *models.CategoryNode {
	for i := range c.Categories {
		if c.Categories[i].ID == c.CategoryID {
			return &c.Categories[i]
		}
	}
	return nil
}
