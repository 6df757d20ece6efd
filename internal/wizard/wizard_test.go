package wizard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rudracore/client-portal/internal/catalog"
	"github.com/rudracore/client-portal/internal/models"
)

func testService(t *testing.T) catalog.Service {
	t.Helper()
	service, err := catalog.FindService("fullstack-web")
	if err != nil {
		t.Fatalf("Expected service, got error: %v", err)
	}
	return *service
}

func TestOrderWizardLinearSteps(t *testing.T) {
	w := NewOrderWizard(testService(t))

	if w.Step() != StepServiceSelected {
		t.Fatalf("Expected wizard to start at step 1, got: %v", w.Step())
	}
	if err := w.Back(); !errors.Is(err, ErrNoPriorStep) {
		t.Errorf("Expected ErrNoPriorStep at step 1, got: %v", err)
	}

	steps := []OrderStep{StepCustomRequirements, StepReviewConfirm, StepPayment}
	for _, expected := range steps {
		if err := w.Next(); err != nil {
			t.Fatalf("Expected advance to %v, got error: %v", expected, err)
		}
		if w.Step() != expected {
			t.Fatalf("Expected step %v, got: %v", expected, w.Step())
		}
	}

	if err := w.Next(); !errors.Is(err, ErrNoFurtherStep) {
		t.Errorf("Expected ErrNoFurtherStep at payment step, got: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Errorf("Expected back transition, got error: %v", err)
	}
	if w.Step() != StepReviewConfirm {
		t.Errorf("Expected step %v after back, got: %v", StepReviewConfirm, w.Step())
	}
}

func TestOrderWizardPrice(t *testing.T) {
	w := NewOrderWizard(testService(t))

	if got := w.TotalPrice(); got != 249 {
		t.Errorf("TotalPrice() = %d, want 249", got)
	}
	w.SetLifetimeUpdates(true)
	// lifetime replaces the base price, 499 and never 249+499
	if got := w.TotalPrice(); got != 499 {
		t.Errorf("TotalPrice() with lifetime updates = %d, want 499", got)
	}
	w.SetLifetimeUpdates(false)
	if got := w.TotalPrice(); got != 249 {
		t.Errorf("TotalPrice() = %d, want 249", got)
	}
}

func TestOrderWizardRequest(t *testing.T) {
	w := NewOrderWizard(testService(t))
	w.SetCustomNotes("dark theme please")
	w.SetLifetimeUpdates(true)

	expected := models.OrderRequest{
		ServiceID:       "fullstack-web",
		ServiceName:     "Full Stack Web Development",
		Price:           499,
		CustomNotes:     "dark theme please",
		LifetimeUpdates: true,
	}
	if diff := cmp.Diff(expected, w.Request()); diff != "" {
		t.Errorf("Request mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderWizardPaymentLink(t *testing.T) {
	w := NewOrderWizard(testService(t))
	link := w.PaymentLink("8019533580@superyes", "RudraCore")

	expected := "upi://pay?pa=8019533580@superyes&pn=RudraCore&am=249&cu=INR&tn=Full%20Stack%20Web%20Development"
	if got := link.String(); got != expected {
		t.Errorf("PaymentLink mismatch:\ngot:  %s\nwant: %s", got, expected)
	}
}

func TestProjectWizard(t *testing.T) {
	level, err := catalog.FindUILevel("medium")
	if err != nil {
		t.Fatalf("Expected UI level, got error: %v", err)
	}
	w := NewProjectWizard(*level)
	w.CommunityURL = "https://discord.gg/hj3nTUS9CE"

	// form must be complete before payment
	if err := w.Next(); !errors.Is(err, ErrFormIncomplete) {
		t.Errorf("Expected ErrFormIncomplete, got: %v", err)
	}
	w.SetProjectName("Portfolio Site")
	w.SetDescription("5-page site")
	if err := w.Next(); err != nil {
		t.Fatalf("Expected advance to payment, got error: %v", err)
	}
	if w.Step() != StepProjectPayment {
		t.Fatalf("Expected payment step, got: %v", w.Step())
	}

	expected := models.ProjectRequest{
		ProjectName: "Portfolio Site",
		Description: "5-page site",
		UILevel:     "Medium Level UI",
		Price:       349,
	}
	if diff := cmp.Diff(expected, w.Request()); diff != "" {
		t.Errorf("Request mismatch (-want +got):\n%s", diff)
	}

	link := w.PaymentLink("8019533580@superyes", "RudraCore")
	expectedLink := "upi://pay?pa=8019533580@superyes&pn=RudraCore&am=349&cu=INR&tn=Medium%20Level%20UI%20Design"
	if got := link.String(); got != expectedLink {
		t.Errorf("PaymentLink mismatch:\ngot:  %s\nwant: %s", got, expectedLink)
	}

	if err := w.Back(); err != nil {
		t.Errorf("Expected back to form, got error: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Expected re-advance to payment, got error: %v", err)
	}
	// the community link only shows up once the submission completed
	if got := w.CommunityLink(); got != "" {
		t.Errorf("Expected no community link before success, got: %q", got)
	}
	w.Complete()
	if w.Step() != StepSuccess {
		t.Errorf("Expected success step, got: %v", w.Step())
	}
	if got := w.CommunityLink(); got != "https://discord.gg/hj3nTUS9CE" {
		t.Errorf("Unexpected community link: %q", got)
	}
}
