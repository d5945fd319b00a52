// form/submit.go
package form

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellora/backoffice/api"
	"github.com/sellora/backoffice/models"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still running.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ItemAPI dispatches a finished draft to the marketplace API.
type ItemAPI interface {
	CreateItem(ctx context.Context, payload *api.ItemPayload) (*models.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, payload *api.ItemPayload) (*models.Item, error)
}

// SubmitPipeline validates a draft, serializes it into a multipart payload
// and performs create or update. The explicit state field guards against
// programmatic double submission independently of any UI disablement.
type SubmitPipeline struct {
	client ItemAPI
	log    *logrus.Entry

	mtx   sync.Mutex
	state models.SubmitState
}

func NewSubmitPipeline(client ItemAPI) *SubmitPipeline {
	return &SubmitPipeline{
		client: client,
		log:    logrus.WithField("component", "submit_pipeline"),
		state:  models.SubmitStateIdle,
	}
}

func (p *SubmitPipeline) State() models.SubmitState {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.state
}

// Submit runs the draft's validation and, when it passes, dispatches the
// multipart payload to the create or update endpoint. The done callback
// runs only on success, with the item the server returned; the draft is
// left intact on every failure so the user can correct and resubmit.
func (p *SubmitPipeline) Submit(ctx context.Context, c *FormController, done func(*models.Item)) error {
	p.mtx.Lock()
	if p.state != models.SubmitStateIdle {
		p.mtx.Unlock()
		return ErrSubmitInFlight
	}
	p.state = models.SubmitStateValidating
	p.mtx.Unlock()

	defer p.setState(models.SubmitStateIdle)

	if err := c.Validate(); err != nil {
		return err
	}

	p.setState(models.SubmitStateSubmitting)
	payload := buildPayload(c)

	var (
		item *models.Item
		err  error
	)
	if c.ItemID == uuid.Nil {
		item, err = p.client.CreateItem(ctx, payload)
	} else {
		item, err = p.client.UpdateItem(ctx, c.ItemID, payload)
	}
	if err != nil {
		p.log.WithError(err).WithField("editing", c.ItemID != uuid.Nil).Warn("Submission failed")
		return err
	}

	if done != nil {
		done(item)
	}

	return nil
}

func (p *SubmitPipeline) setState(state models.SubmitState) {
	p.mtx.Lock()
	p.state = state
	p.mtx.Unlock()
}

// buildPayload serializes the draft. The child category id takes
// precedence over the parent when both are set; schedule fields travel
// only for services; stored images are never re-sent.
func buildPayload(c *FormController) *api.ItemPayload {
	categoryID := c.CategoryID
	if c.ChildCategoryID != uuid.Nil {
		categoryID = c.ChildCategoryID
	}

	payload := &api.ItemPayload{
		Title:        strings.TrimSpace(c.Title),
		Description:  c.Description,
		Type:         c.ItemType,
		CategoryID:   categoryID,
		SalesPrice:   strings.TrimSpace(c.SalesPrice),
		RegularPrice: strings.TrimSpace(c.RegularPrice),
		Quantity:     strings.TrimSpace(c.Quantity),
		Files:        c.Media.Pending(),
	}

	if c.ItemType == models.ItemTypeService {
		payload.PricingModel = c.PricingModel
		payload.DeliveryMethod = c.DeliveryMethod
		payload.EstimatedDeliveryTime = c.DeliveryTimeString()
		payload.AvailableDays = append([]string(nil), c.AvailableDays...)
		payload.AvailableFrom = strings.TrimSpace(c.AvailableFrom)
		payload.AvailableTo = strings.TrimSpace(c.AvailableTo)
	}

	return payload
}
