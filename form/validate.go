// form/validate.go
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/sellora/backoffice/models"
	"github.com/sellora/backoffice/utils"
)

var (
	ErrTitleLength        = errors.New("title must be between 5 and 250 characters")
	ErrDescriptionLength  = errors.New("description must be between 100 and 4000 characters")
	ErrCategoryRequired   = errors.New("please select a category")
	ErrSubCategoryNeeded  = errors.New("please select a sub category")
	ErrPricingModel       = errors.New("please select a pricing model")
	ErrDeliveryMethod     = errors.New("please select a delivery method")
	ErrDeliveryTime       = errors.New("please provide a valid estimated delivery time")
	ErrAvailableDays      = errors.New("please choose at least one available day")
	ErrAvailableHours     = errors.New("please set both available from and to times")
	ErrAvailableHourOrder = errors.New("available from must be earlier than available to")
	ErrSalesPrice         = errors.New("sales price must be a non-negative number")
	ErrRegularPrice       = errors.New("regular price must be a non-negative number")
	ErrPriceOrder         = errors.New("sales price must be lower than regular price")
	ErrQuantity           = errors.New("quantity must be a non-negative whole number")
)

// Validate runs the draft checks in the order the form surfaces them and
// returns the first failure, or nil when the draft is submittable. It has
// no side effects and makes no network calls.
func (c *FormController) Validate() error {
	v := utils.Validate()

	if err := v.Var(c.Title, "required,min=5,max=250"); err != nil {
		return ErrTitleLength
	}

	if err := v.Var(c.Description, "required,min=100,max=4000"); err != nil {
		return ErrDescriptionLength
	}

	if count := c.Media.Count(); count < c.Media.MinCount() || count > c.Media.MaxCount() {
		return fmt.Errorf("please add between %d and %d images",
			c.Media.MinCount(), c.Media.MaxCount())
	}

	if c.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}

	if node := c.selectedNode(); node != nil && node.HasChildren() && c.ChildCategoryID == uuid.Nil {
		return ErrSubCategoryNeeded
	}

	if c.ItemType == models.ItemTypeService {
		if err := c.validateSchedule(); err != nil {
			return err
		}
	}

	salesPrice, err := parsePrice(c.SalesPrice)
	if err != nil {
		return ErrSalesPrice
	}

	regularPrice, err := parsePrice(c.RegularPrice)
	if err != nil {
		return ErrRegularPrice
	}

	if salesPrice >= regularPrice {
		return ErrPriceOrder
	}

	if c.ItemType == models.ItemTypeProduct {
		quantity, err := strconv.Atoi(strings.TrimSpace(c.Quantity))
		if err != nil || quantity < 0 {
			return ErrQuantity
		}
	}

	return nil
}

func (c *FormController) validateSchedule() error {
	if strings.TrimSpace(c.PricingModel) == "" {
		return ErrPricingModel
	}

	if strings.TrimSpace(c.DeliveryMethod) == "" {
		return ErrDeliveryMethod
	}

	if !utils.IsDeliveryTime(c.DeliveryTimeString()) {
		return ErrDeliveryTime
	}

	if len(c.AvailableDays) == 0 {
		return ErrAvailableDays
	}

	from := strings.TrimSpace(c.AvailableFrom)
	to := strings.TrimSpace(c.AvailableTo)
	if from == "" || to == "" {
		return ErrAvailableHours
	}
	if from >= to {
		return ErrAvailableHourOrder
	}

	return nil
}

func parsePrice(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, errors.New("negative price")
	}
	return value, nil
}
