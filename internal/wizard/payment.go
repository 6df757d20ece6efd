package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/rudracore/client-portal/internal/device"
	"github.com/rudracore/client-portal/internal/upi"
)

// PaymentState - states of the payment hand-off machine
type PaymentState int

const (
	StateInitiate PaymentState = iota
	StateRedirecting
	StateDeviceAlert
	StateQRDisplay
	StateAwaitingConfirmation
	StateSubmitted
)

func (s PaymentState) String() string {
	switch s {
	case StateInitiate:
		return "initiate"
	case StateRedirecting:
		return "redirecting"
	case StateDeviceAlert:
		return "device-alert"
	case StateQRDisplay:
		return "qr-display"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Hand-off pacing. The pause keeps the redirect notice readable before the
// browser leaves the page, the clear delay covers the app switch.
const (
	RedirectDelay      = time.Second
	RedirectClearDelay = 2 * time.Second
	CompleteDelay      = 2 * time.Second
)

// Device alert messages shown before falling back to the QR code.
const (
	MessageMobileNoApp = "No UPI apps have been detected on your mobile. Please click OK to continue paying via QR code."
	MessageDesktop     = "You are using a desktop to continue the payment. Please click OK to continue paying via QR code."
)

var (
	ErrNotAwaitingPayment = errors.New("payment not awaiting confirmation")
	ErrAlreadySubmitted   = errors.New("payment already submitted")
	ErrSubmitInFlight     = errors.New("submission in flight")
	ErrFlowStarted        = errors.New("payment flow already started")
)

// Navigator opens the UPI deep link in the payment app.
type Navigator interface {
	Navigate(link upi.Link)
}

// PaymentVerifier decides whether an asserted payment is accepted.
type PaymentVerifier interface {
	Verify(ctx context.Context, link upi.Link) error
}

// AlwaysTrust accepts every asserted payment. This matches the portal's
// trust model: paymentStatus is recorded as paid without gateway proof.
// A gateway-backed verifier can replace it without touching the flow.
type AlwaysTrust struct{}

func (AlwaysTrust) Verify(ctx context.Context, link upi.Link) error {
	return nil
}

// SubmitFunc performs the record creation once payment is asserted.
type SubmitFunc func(ctx context.Context) error

// PaymentFlow drives one payment hand-off: device branch, deep link or QR
// fallback, manual confirmation, submission. The classifier, navigator,
// verifier and sleep hook are injectable so tests run without a browser
// or real delays.
type PaymentFlow struct {
	Link       upi.Link
	Classifier func(userAgent string) device.Type
	Navigator  Navigator
	Verifier   PaymentVerifier
	Submit     SubmitFunc
	Sleep      func(d time.Duration)

	state    PaymentState
	device   device.Type
	message  string
	inFlight bool
}

// NewPaymentFlow builds a flow with production defaults.
func NewPaymentFlow(link upi.Link, navigator Navigator, submit SubmitFunc) *PaymentFlow {
	return &PaymentFlow{
		Link:       link,
		Classifier: device.Classify,
		Navigator:  navigator,
		Verifier:   AlwaysTrust{},
		Submit:     submit,
		Sleep:      time.Sleep,
		state:      StateInitiate,
	}
}

func (f *PaymentFlow) State() PaymentState {
	return f.state
}

func (f *PaymentFlow) Device() device.Type {
	return f.device
}

// Message returns the device alert text, set only in StateDeviceAlert.
func (f *PaymentFlow) Message() string {
	return f.message
}

// Begin branches on the device type. Android-like mobiles get the direct
// deep link hand-off, everything else is told about the QR fallback first.
// A flow begins exactly once; re-entry would reset state mid-payment and
// re-trigger the hand-off.
func (f *PaymentFlow) Begin(userAgent string) error {
	if f.state != StateInitiate {
		return ErrFlowStarted
	}
	f.device = f.Classifier(userAgent)

	switch f.device {
	case device.MobileWithApp:
		f.state = StateRedirecting
		f.Sleep(RedirectDelay)
		f.Navigator.Navigate(f.Link)
		f.Sleep(RedirectClearDelay)
		f.state = StateAwaitingConfirmation
	case device.MobileNoApp:
		f.message = MessageMobileNoApp
		f.state = StateDeviceAlert
	default:
		f.message = MessageDesktop
		f.state = StateDeviceAlert
	}
	return nil
}

// Acknowledge confirms the device alert and shows the QR code with the
// same payment parameters for manual entry.
func (f *PaymentFlow) Acknowledge() error {
	if f.state != StateDeviceAlert {
		return ErrNotAwaitingPayment
	}
	f.state = StateQRDisplay
	return nil
}

// ConfirmPayment is the user's "I have completed the payment" assertion.
// It triggers the create call whether or not payment happened; a failed
// submission re-enables confirmation, and a retry creates a new record.
func (f *PaymentFlow) ConfirmPayment(ctx context.Context) error {
	switch f.state {
	case StateQRDisplay, StateAwaitingConfirmation:
	case StateSubmitted:
		return ErrAlreadySubmitted
	default:
		return ErrNotAwaitingPayment
	}
	if f.inFlight {
		return ErrSubmitInFlight
	}

	f.state = StateAwaitingConfirmation
	f.inFlight = true
	defer func() { f.inFlight = false }()

	if err := f.Verifier.Verify(ctx, f.Link); err != nil {
		return err
	}
	if err := f.Submit(ctx); err != nil {
		return err
	}
	// pause before handing back to the listing
	f.Sleep(CompleteDelay)
	f.state = StateSubmitted
	return nil
}
