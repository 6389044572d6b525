package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"tripvisito/internal/models/db_models"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users     map[string]*db_models.User // keyed by id
	inserts   int
	insertErr error // returned by Insert when set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*db_models.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	f.inserts++
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByRole(_ context.Context, role string) (*db_models.User, error) {
	for _, user := range f.users {
		for _, r := range user.Roles {
			if r == role {
				return user, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, page, limit int) ([]db_models.User, int64, error) {
	var users []db_models.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeTripRepo struct {
	trips map[string]*db_models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*db_models.Trip)}
}

func (f *fakeTripRepo) Insert(_ context.Context, trip *db_models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID.String()] = trip
	return nil
}

func (f *fakeTripRepo) FindByID(_ context.Context, id string) (*db_models.Trip, error) {
	return f.trips[id], nil
}

func (f *fakeTripRepo) List(_ context.Context, page, limit int) ([]db_models.Trip, int64, error) {
	var trips []db_models.Trip
	for _, trip := range f.trips {
		trips = append(trips, *trip)
	}
	return trips, int64(len(f.trips)), nil
}

func (f *fakeTripRepo) ListByUser(_ context.Context, userID string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	for _, trip := range f.trips {
		if trip.UserID.String() == userID {
			trips = append(trips, *trip)
		}
	}
	return trips, nil
}

func (f *fakeTripRepo) Update(_ context.Context, trip *db_models.Trip) error {
	f.trips[trip.ID.String()] = trip
	return nil
}

type fakePaymentRepo struct {
	payments    map[string]*db_models.Payment // keyed by session id
	updates     int
	failUpdates int // number of upcoming Update calls that should error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*db_models.Payment)}
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment *db_models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.StripeSessionID != nil {
		f.payments[*payment.StripeSessionID] = payment
	}
	return nil
}

// FindBySessionID hands back a copy, like a fresh row read; mutations only
// stick once Update is called.
func (f *fakePaymentRepo) FindBySessionID(_ context.Context, sessionID string) (*db_models.Payment, error) {
	payment, ok := f.payments[sessionID]
	if !ok {
		return nil, nil
	}
	row := *payment
	return &row, nil
}

func (f *fakePaymentRepo) Update(_ context.Context, payment *db_models.Payment) error {
	if f.failUpdates > 0 {
		f.failUpdates--
		return errors.New("update failed")
	}
	f.updates++
	if payment.StripeSessionID != nil {
		row := *payment
		f.payments[*payment.StripeSessionID] = &row
	}
	return nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, userID string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	for _, payment := range f.payments {
		if payment.UserID.String() == userID {
			payments = append(payments, *payment)
		}
	}
	return payments, nil
}

func (f *fakePaymentRepo) HasConfirmed(_ context.Context, userID, tripID string) (bool, error) {
	for _, payment := range f.payments {
		if payment.UserID.String() == userID &&
			payment.TripID.String() == tripID &&
			payment.Status == db_models.PaymentStatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

type fakeWebhookEventRepo struct {
	seen map[string]bool
}

func newFakeWebhookEventRepo() *fakeWebhookEventRepo {
	return &fakeWebhookEventRepo{seen: make(map[string]bool)}
}

func (f *fakeWebhookEventRepo) MarkProcessed(_ context.Context, eventID, eventType string) (bool, error) {
	if f.seen[eventID] {
		return false, nil
	}
	f.seen[eventID] = true
	return true, nil
}

func (f *fakeWebhookEventRepo) Unmark(_ context.Context, eventID string) error {
	delete(f.seen, eventID)
	return nil
}

type fakeReviewRepo struct {
	reviews []*db_models.Review
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *db_models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ListByTrip(_ context.Context, tripID string) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, review := range f.reviews {
		if review.TripID.String() == tripID {
			out = append(out, *review)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	messages []*db_models.ChatMessage
	failNext bool
}

func (f *fakeChatRepo) Insert(_ context.Context, message *db_models.ChatMessage) error {
	if f.failNext {
		f.failNext = false
		return errors.New("insert failed")
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatRepo) ListByRoom(_ context.Context, roomID string) ([]db_models.ChatMessage, error) {
	var out []db_models.ChatMessage
	for _, message := range f.messages {
		if message.RoomID == roomID {
			out = append(out, *message)
		}
	}
	return out, nil
}

// fakeNotificationRepo is safe for concurrent use: payment confirmation
// inserts notifications from a goroutine.
type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*db_models.Notification
}

func (f *fakeNotificationRepo) Insert(_ context.Context, notification *db_models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notifications)
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string) ([]db_models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Notification
	for _, notification := range f.notifications {
		if notification.UserID.String() == userID {
			out = append(out, *notification)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListAll(_ context.Context) ([]db_models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Notification
	for _, notification := range f.notifications {
		out = append(out, *notification)
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notification := range f.notifications {
		if notification.ID.String() == id {
			notification.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, notification := range f.notifications {
		if notification.ID.String() == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeMailService struct {
	mu   sync.Mutex
	sent []string // recipient addresses
}

func (f *fakeMailService) SendPaymentConfirmation(to, name string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailService) SendMailToNotifyUser(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailService) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePlanner struct {
	response string
	err      error
}

func (f *fakePlanner) GenerateItinerary(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func (f *fakePlanner) Close() error { return nil }

type fakeImageClient struct {
	urls []string
	err  error
}

func (f *fakeImageClient) SearchImages(_ context.Context, _ string, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.urls) > limit {
		return f.urls[:limit], nil
	}
	return f.urls, nil
}
