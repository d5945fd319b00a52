// api/payload.go
package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sellora/backoffice/models"
)

// ItemPayload is the multipart body for item create and update calls.
// Field values are kept as the strings the form held; the server owns
// numeric parsing. Already persisted images are never re-sent.
type ItemPayload struct {
	Title                 string
	Description           string
	Type                  models.ItemType
	CategoryID            uuid.UUID
	SalesPrice            string
	RegularPrice          string
	Quantity              string
	PricingModel          string
	DeliveryMethod        string
	EstimatedDeliveryTime string
	AvailableDays         []string
	AvailableFrom         string
	AvailableTo           string
	Files                 []models.PendingFile
}

// encode writes the payload as multipart form data. Field names must match
// the server expectation exactly.
func (p *ItemPayload) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"type", string(p.Type)},
		{"category_id", p.CategoryID.String()},
		{"sales_price", p.SalesPrice},
		{"regular_price", p.RegularPrice},
		{"quantity", p.Quantity},
	}

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", f.name)
		}
	}

	if p.Type == models.ItemTypeService {
		days, err := json.Marshal(p.AvailableDays)
		if err != nil {
			return nil, "", errors.Wrap(err, "encode available days")
		}

		serviceFields := []struct {
			name  string
			value string
		}{
			{"pricing_model", p.PricingModel},
			{"delivery_method", p.DeliveryMethod},
			{"estimated_delivery_time", p.EstimatedDeliveryTime},
			{"available_days", string(days)},
			{"available_from", p.AvailableFrom},
			{"available_to", p.AvailableTo},
		}

		for _, f := range serviceFields {
			if err := w.WriteField(f.name, f.value); err != nil {
				return nil, "", errors.Wrapf(err, "write field %s", f.name)
			}
		}
	}

	for _, file := range p.Files {
		part, err := w.CreateFormFile("images[]", file.Name)
		if err != nil {
			return nil, "", errors.Wrap(err, "create image part")
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", errors.Wrap(err, "write image part")
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return buf, w.FormDataContentType(), nil
}
