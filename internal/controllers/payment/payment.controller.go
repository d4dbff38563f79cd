package paymentController

import (
	"context"
	"encoding/json"
	"fmt"
	"server/config"
	"server/internal/events"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	checkoutSession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

type PaymentController struct {
	applicationRepo repositories.ApplicationRepository
	eventBus        *events.EventBus
	config          config.Config
	log             logger.Logger
}

func New(
	applicationRepo repositories.ApplicationRepository,
	eventBus *events.EventBus,
	config config.Config,
) *PaymentController {
	stripe.Key = config.StripeSecretKey

	return &PaymentController{
		applicationRepo: applicationRepo,
		eventBus:        eventBus,
		config:          config,
		log:             logger.New("PaymentController"),
	}
}

// CreateCheckout opens a hosted checkout session for the one fixed filing
// fee and returns the redirect URL. The application and user IDs travel as
// session metadata so confirmation and the webhook can tie the payment
// back to the stored row.
func (pc *PaymentController) CreateCheckout(ctx context.Context, user User, formID string) (string, error) {
	log := pc.log.Function("CreateCheckout")

	application, err := pc.applicationRepo.GetByID(ctx, formID)
	if err != nil {
		return "", err
	}
	if application.UserID != user.ID {
		return "", log.Error("application not owned by user", "formID", formID, "userID", user.ID)
	}
	if application.Status != StatusSubmitted {
		return "", log.Error("application is not submitted", "formID", formID, "status", application.Status)
	}
	if application.IsPaid() {
		return "", log.Error("application is already paid", "formID", formID)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(pc.config.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf(
			"%s/payment/success?session_id={CHECKOUT_SESSION_ID}&form_id=%s",
			pc.config.AppBaseURL, formID,
		)),
		CancelURL: stripe.String(fmt.Sprintf(
			"%s/payment/cancelled?form_id=%s",
			pc.config.AppBaseURL, formID,
		)),
	}
	params.AddMetadata("form_id", formID)
	params.AddMetadata("user_id", user.ID)

	session, err := checkoutSession.New(params)
	if err != nil {
		return "", log.Err("failed to create checkout session", err, "formID", formID)
	}

	log.Info("Checkout session created", "formID", formID, "sessionID", session.ID)
	return session.URL, nil
}

// Confirm re-fetches the checkout session from the payment provider and
// cross-checks its form_id metadata against the caller's form_id before
// touching the stored row. Client-supplied payment status is never
// trusted.
func (pc *PaymentController) Confirm(ctx context.Context, user User, sessionID, formID string) error {
	log := pc.log.Function("Confirm")

	session, err := checkoutSession.Get(sessionID, nil)
	if err != nil {
		return log.Err("failed to fetch checkout session", err, "sessionID", sessionID)
	}

	if session.Metadata["form_id"] != formID {
		return log.Error("session does not belong to this form",
			"sessionID", sessionID, "formID", formID)
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return log.Error("session is not paid",
			"sessionID", sessionID, "paymentStatus", string(session.PaymentStatus))
	}

	application, err := pc.applicationRepo.GetByID(ctx, formID)
	if err != nil {
		return err
	}
	if application.UserID != user.ID {
		return log.Error("application not owned by user", "formID", formID, "userID", user.ID)
	}

	if err := pc.applicationRepo.MarkPaid(ctx, formID, sessionID); err != nil {
		return err
	}

	pc.publishPaid(application.UserID, formID)
	return nil
}

// HandleWebhook applies a signed provider event. This path is independent
// of the synchronous confirmation call, so a user who closes the tab
// before redirect still ends up paid.
func (pc *PaymentController) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	log := pc.log.Function("HandleWebhook")

	event, err := webhook.ConstructEvent(payload, signature, pc.config.StripeWebhookSecret)
	if err != nil {
		return log.Err("failed to verify webhook signature", err)
	}

	if event.Type != "checkout.session.completed" {
		log.Info("Ignoring webhook event", "type", string(event.Type))
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return log.Err("failed to decode webhook session", err)
	}

	formID := session.Metadata["form_id"]
	if formID == "" {
		return log.Error("webhook session has no form_id metadata", "sessionID", session.ID)
	}

	application, err := pc.applicationRepo.GetByID(ctx, formID)
	if err != nil {
		return err
	}

	if err := pc.applicationRepo.MarkPaid(ctx, formID, session.ID); err != nil {
		return err
	}

	log.Info("Payment recorded from webhook", "formID", formID, "sessionID", session.ID)
	pc.publishPaid(application.UserID, formID)
	return nil
}

// Status is the poll endpoint the success page retries while waiting for
// confirmation.
func (pc *PaymentController) Status(ctx context.Context, user User, formID string) (string, error) {
	log := pc.log.Function("Status")

	application, err := pc.applicationRepo.GetByID(ctx, formID)
	if err != nil {
		return "", err
	}
	if application.UserID != user.ID {
		return "", log.Error("application not owned by user", "formID", formID, "userID", user.ID)
	}

	return application.PaymentStatus, nil
}

func (pc *PaymentController) publishPaid(userID, formID string) {
	log := pc.log.Function("publishPaid")

	event := events.Event{
		ID:        uuid.New().String(),
		Type:      "payment",
		Channel:   "payments",
		UserID:    userID,
		Data:      map[string]any{"formId": formID, "paymentStatus": PaymentPaid},
		Timestamp: time.Now(),
	}

	if err := pc.eventBus.Publish("payments", event); err != nil {
		// The poll endpoint still reports the new status; the push is an
		// optimization.
		log.Er("failed to publish payment event", err, "formID", formID)
	}
}
