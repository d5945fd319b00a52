// models/item.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Enums
type ItemType string

const (
	ItemTypeProduct ItemType = "products"
	ItemTypeService ItemType = "services"
)

type SubmitState string

const (
	SubmitStateIdle       SubmitState = "idle"
	SubmitStateValidating SubmitState = "validating"
	SubmitStateSubmitting SubmitState = "submitting"
)

// Item is the persisted catalog entry as the marketplace API returns it.
// Service-only fields are empty for physical products.
type Item struct {
	ID                    uuid.UUID   `json:"id"`
	Type                  ItemType    `json:"type"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	SalesPrice            float64     `json:"sales_price"`
	RegularPrice          float64     `json:"regular_price"`
	Quantity              int         `json:"quantity"`
	CategoryID            uuid.UUID   `json:"category_id"`
	ChildCategoryID       uuid.UUID   `json:"child_category_id,omitempty"`
	Images                []ItemImage `json:"images,omitempty"`
	PricingModel          string      `json:"pricing_model,omitempty"`
	DeliveryMethod        string      `json:"delivery_method,omitempty"`
	EstimatedDeliveryTime string      `json:"estimated_delivery_time,omitempty"`
	AvailableDays         []string    `json:"available_days,omitempty"`
	AvailableFrom         string      `json:"available_from,omitempty"`
	AvailableTo           string      `json:"available_to,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// ItemImage is a server-stored image, deletable by its remote id.
type ItemImage struct {
	RemoteID uuid.UUID `json:"id"`
	URL      string    `json:"url"`
}
