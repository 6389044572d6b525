package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/request_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	ClientURL     string // public client origin for redirect URLs
}

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, request request_models.CheckoutRequest) (*response_models.CheckoutResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	ListBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error)
}

type PaymentService struct {
	paymentRepo  repositories.PaymentRepository
	eventRepo    repositories.WebhookEventRepository
	tripRepo     repositories.TripRepository
	userRepo     repositories.UserRepository
	mailService  IMailService
	notifyRepo   repositories.NotificationRepository
	cfg          StripeConfig
	createStripe func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	eventRepo repositories.WebhookEventRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	mailService IMailService,
	notifyRepo repositories.NotificationRepository,
	cfg StripeConfig,
) PaymentServiceInterface {
	stripe.Key = cfg.SecretKey
	return &PaymentService{
		paymentRepo:  paymentRepo,
		eventRepo:    eventRepo,
		tripRepo:     tripRepo,
		userRepo:     userRepo,
		mailService:  mailService,
		notifyRepo:   notifyRepo,
		cfg:          cfg,
		createStripe: session.New,
	}
}

// CreateCheckout builds the provider session first, then persists the PENDING
// record keyed by the session id so the webhook can find it.
func (p *PaymentService) CreateCheckout(ctx context.Context, userID uuid.UUID, request request_models.CheckoutRequest) (*response_models.CheckoutResponse, error) {
	tripID, err := uuid.Parse(request.TripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(request.TripName),
					},
					// Stripe wants minor units; amounts arrive in dollars.
					UnitAmount: stripe.Int64(request.Amount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/trip/payment/success", p.cfg.ClientURL)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/trip/%s", p.cfg.ClientURL, request.TripID)),
	}
	// Stripe rejects empty optional strings, so these are set conditionally.
	if request.TripDescription != "" {
		params.LineItems[0].PriceData.ProductData.Description = stripe.String(request.TripDescription)
	}
	if request.TripImage != "" {
		params.LineItems[0].PriceData.ProductData.Images = stripe.StringSlice([]string{request.TripImage})
	}
	params.AddMetadata("userId", userID.String())
	params.AddMetadata("tripId", request.TripID)

	checkoutSession, err := p.createStripe(params)
	if err != nil {
		log.Printf("Stripe session error: %v", err)
		return nil, fmt.Errorf("stripe checkout: %w", err)
	}

	payment := &db_models.Payment{
		TripID:          tripID,
		UserID:          userID,
		Amount:          request.Amount,
		Status:          db_models.PaymentStatusPending,
		IsPaid:          false,
		StripeSessionID: &checkoutSession.ID,
	}
	if err := p.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckoutResponse{URL: checkoutSession.URL}, nil
}

// HandleWebhook verifies the provider signature before touching anything, then
// applies the completed-checkout transition at most once per event id.
func (p *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return utils.ErrWebhookSignature
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var checkoutSession stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
		return utils.ErrWebhookSignature
	}

	first, err := p.eventRepo.MarkProcessed(ctx, event.ID, string(event.Type))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !first {
		log.Printf("webhook: duplicate delivery of event %s, skipping", event.ID)
		return nil
	}

	if err := p.confirmCheckout(ctx, &checkoutSession); err != nil {
		// Release the dedupe row so the provider's retry of this event id is
		// processed instead of skipped; the payment must not stay PENDING
		// because one attempt failed mid-flight.
		if unmarkErr := p.eventRepo.Unmark(ctx, event.ID); unmarkErr != nil {
			log.Printf("webhook: could not release event %s after failed processing: %v", event.ID, unmarkErr)
		}
		return err
	}
	return nil
}

func (p *PaymentService) confirmCheckout(ctx context.Context, checkoutSession *stripe.CheckoutSession) error {
	payment, err := p.paymentRepo.FindBySessionID(ctx, checkoutSession.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		// Ack unknown sessions: retrying can never make the record appear.
		log.Printf("webhook: payment not found for session %s", checkoutSession.ID)
		return nil
	}

	if payment.Status != db_models.PaymentStatusConfirmed {
		now := time.Now().Unix()
		payment.Status = db_models.PaymentStatusConfirmed
		payment.IsPaid = true
		payment.PaymentDate = &now
		if checkoutSession.PaymentIntent != nil {
			payment.PaymentIntentID = checkoutSession.PaymentIntent.ID
		}
		if err := p.paymentRepo.Update(ctx, payment); err != nil {
			return utils.ErrDatabaseError
		}
	}

	// Side effects are decoupled from the response path: logged on failure,
	// never rolled into the payment state.
	go p.notifyPayer(context.Background(), payment)

	return nil
}

func (p *PaymentService) notifyPayer(ctx context.Context, payment *db_models.Payment) {
	notification := &db_models.Notification{
		UserID:  payment.UserID,
		Title:   "Payment confirmed",
		Message: fmt.Sprintf("Your booking payment of $%d was successful.", payment.Amount),
		Type:    db_models.NotificationPayment,
	}
	if err := p.notifyRepo.Insert(ctx, notification); err != nil {
		log.Printf("webhook: failed to store payment notification: %v", err)
	}

	user, err := p.userRepo.FindByID(ctx, payment.UserID.String())
	if err != nil || user == nil {
		log.Printf("webhook: could not load payer %s for confirmation mail", payment.UserID)
		return
	}
	if err := p.mailService.SendPaymentConfirmation(user.Email, user.Name, payment.Amount); err != nil {
		log.Printf("webhook: confirmation mail to %s failed: %v", user.Email, err)
	}
}

func (p *PaymentService) ListBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error) {
	payments, err := p.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	bookings := make([]response_models.BookingResponse, 0, len(payments))
	for i := range payments {
		payment := &payments[i]
		booking := response_models.BookingResponse{
			ID:          payment.ID.String(),
			TripID:      payment.TripID.String(),
			Amount:      payment.Amount,
			Status:      string(payment.Status),
			IsPaid:      payment.IsPaid,
			PaymentDate: payment.PaymentDate,
			CreatedAt:   payment.CreatedAt,
		}

		trip, err := p.tripRepo.FindByID(ctx, payment.TripID.String())
		if err == nil && trip != nil {
			booking.TripImages = trip.ImageURLs
			booking.TripName = tripName(trip)
		}

		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func tripName(trip *db_models.Trip) string {
	var details struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(trip.TripDetails, &details); err != nil {
		return ""
	}
	return details.Name
}
