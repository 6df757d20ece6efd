// Package wizard holds the client flow engine: the linear order and
// project-request wizards and the payment hand-off state machine. State
// lives in memory only, abandoning a flow before submission discards it.
package wizard

import (
	"errors"

	"github.com/rudracore/client-portal/internal/catalog"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/upi"
)

var (
	ErrNoFurtherStep  = errors.New("no further step")
	ErrNoPriorStep    = errors.New("no prior step")
	ErrFormIncomplete = errors.New("form incomplete")
)

// OrderStep - steps of the order wizard, numbered 1-4
type OrderStep int

const (
	StepServiceSelected OrderStep = iota + 1
	StepCustomRequirements
	StepReviewConfirm
	StepPayment
)

func (s OrderStep) String() string {
	switch s {
	case StepServiceSelected:
		return "service-selected"
	case StepCustomRequirements:
		return "custom-requirements"
	case StepReviewConfirm:
		return "review-confirm"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// OrderWizard accumulates order input across strictly linear steps. The
// selected service is immutable once the wizard is created.
type OrderWizard struct {
	service         catalog.Service
	customNotes     string
	lifetimeUpdates bool
	step            OrderStep
}

// NewOrderWizard starts the wizard at step 1 for the chosen service.
func NewOrderWizard(service catalog.Service) *OrderWizard {
	return &OrderWizard{service: service, step: StepServiceSelected}
}

func (w *OrderWizard) Step() OrderStep {
	return w.step
}

func (w *OrderWizard) Service() catalog.Service {
	return w.service
}

// Next advances one step. Steps cannot be skipped.
func (w *OrderWizard) Next() error {
	if w.step >= StepPayment {
		return ErrNoFurtherStep
	}
	w.step++
	return nil
}

// Back returns to the previous step, discarding nothing: entered values
// stay until the whole wizard is abandoned.
func (w *OrderWizard) Back() error {
	if w.step <= StepServiceSelected {
		return ErrNoPriorStep
	}
	w.step--
	return nil
}

func (w *OrderWizard) SetCustomNotes(notes string) {
	w.customNotes = notes
}

func (w *OrderWizard) SetLifetimeUpdates(on bool) {
	w.lifetimeUpdates = on
}

func (w *OrderWizard) CustomNotes() string {
	return w.customNotes
}

func (w *OrderWizard) LifetimeUpdates() bool {
	return w.lifetimeUpdates
}

// TotalPrice is the base price, or the lifetime price when the flag is
// set. The two are mutually exclusive, never additive.
func (w *OrderWizard) TotalPrice() int {
	return w.service.TotalPrice(w.lifetimeUpdates)
}

// Request composes the submission payload from the accumulated state.
func (w *OrderWizard) Request() models.OrderRequest {
	return models.OrderRequest{
		ServiceID:       w.service.ID,
		ServiceName:     w.service.Title,
		Price:           w.TotalPrice(),
		CustomNotes:     w.customNotes,
		LifetimeUpdates: w.lifetimeUpdates,
	}
}

// PaymentLink builds the UPI deep link for the current total. The
// transaction note is the service title.
func (w *OrderWizard) PaymentLink(payeeAddress, payeeName string) upi.Link {
	return upi.NewLink(payeeAddress, payeeName, w.TotalPrice(), w.service.Title)
}

// ProjectStep - steps of the project request wizard
type ProjectStep int

const (
	StepForm ProjectStep = iota + 1
	StepProjectPayment
	StepSuccess
)

func (s ProjectStep) String() string {
	switch s {
	case StepForm:
		return "form"
	case StepProjectPayment:
		return "payment"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ProjectWizard collects a project request: free-form details plus one of
// the fixed UI tiers, which sets the price.
type ProjectWizard struct {
	// CommunityURL is the invite surfaced on the success step, set from
	// configuration.
	CommunityURL string

	level       catalog.UILevel
	projectName string
	description string
	step        ProjectStep
}

// NewProjectWizard starts the wizard at the form step for the chosen tier.
func NewProjectWizard(level catalog.UILevel) *ProjectWizard {
	return &ProjectWizard{level: level, step: StepForm}
}

func (w *ProjectWizard) Step() ProjectStep {
	return w.step
}

func (w *ProjectWizard) SetProjectName(name string) {
	w.projectName = name
}

func (w *ProjectWizard) SetDescription(description string) {
	w.description = description
}

// Next advances from the form to payment; the form must be filled first.
// The success step is reached only through a completed submission.
func (w *ProjectWizard) Next() error {
	if w.step != StepForm {
		return ErrNoFurtherStep
	}
	if w.projectName == "" || w.description == "" {
		return ErrFormIncomplete
	}
	w.step = StepProjectPayment
	return nil
}

// Back returns from payment to the form.
func (w *ProjectWizard) Back() error {
	if w.step != StepProjectPayment {
		return ErrNoPriorStep
	}
	w.step = StepForm
	return nil
}

// Complete marks the submission done and moves to the success step, which
// surfaces the community link for next steps.
func (w *ProjectWizard) Complete() {
	w.step = StepSuccess
}

// CommunityLink is the community invite, available once the submission
// completed.
func (w *ProjectWizard) CommunityLink() string {
	if w.step != StepSuccess {
		return ""
	}
	return w.CommunityURL
}

func (w *ProjectWizard) Price() int {
	return w.level.Price
}

// Request composes the submission payload from the accumulated state.
func (w *ProjectWizard) Request() models.ProjectRequest {
	return models.ProjectRequest{
		ProjectName: w.projectName,
		Description: w.description,
		UILevel:     w.level.Name,
		Price:       w.level.Price,
	}
}

// PaymentLink builds the UPI deep link for the chosen tier. The
// transaction note is the tier name plus "Design".
func (w *ProjectWizard) PaymentLink(payeeAddress, payeeName string) upi.Link {
	return upi.NewLink(payeeAddress, payeeName, w.level.Price, w.level.Name+" Design")
}
