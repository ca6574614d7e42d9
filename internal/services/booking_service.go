package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/notify"
	"backend/internal/repositories"
	"backend/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	Notifier    notify.Notifier
	WhatsApp    string
	RequestID   string

	// Dispatch overrides the async notification goroutine in tests.
	Dispatch func(bookingID int64)
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Create validates and stores a booking inquiry, then fires the
// notification without waiting on it. The returned id only depends on the
// insert; a dead notifier never fails the caller.
func (s BookingService) Create(in models.BookingInput) (int64, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.TravelDate = strings.TrimSpace(in.TravelDate)

	if in.CustomerName == "" || in.Email == "" || in.Phone == "" || in.TravelDate == "" || in.NumAdults == nil {
		return 0, domain.ValidationError{Msg: "Missing required fields"}
	}
	if *in.NumAdults <= 0 {
		return 0, domain.ValidationError{Field: "num_adults", Msg: "must be greater than zero"}
	}
	if in.NumChildren != nil && *in.NumChildren < 0 {
		return 0, domain.ValidationError{Field: "num_children", Msg: "must not be negative"}
	}

	id, err := s.bookings().Create(in)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d", id))

	if s.Dispatch != nil {
		s.Dispatch(id)
	} else {
		go s.sendNotification(id)
	}

	return id, nil
}

// UpdateStatus enforces the pending/confirmed/cancelled enum before
// writing. An id that matches no row still reports success, matching the
// admin panel's expectations.
func (s BookingService) UpdateStatus(id int64, rawStatus string) error {
	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return domain.ValidationError{Field: "status", Msg: err.Error()}
	}
	if err := s.bookings().UpdateStatus(id, status); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "update_status", fmt.Sprintf("booking_id=%d status=%s", id, status))
	return nil
}

// sendNotification loads the enriched booking and delivers the summary.
// The booking insert and this lookup are separate statements; if the
// package vanishes in between, the summary just loses its title.
func (s BookingService) sendNotification(bookingID int64) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		utils.LogEvent(s.RequestID, "notify", "load_failed", fmt.Sprintf("booking_id=%d err=%v", bookingID, err))
		return
	}

	notifier := s.Notifier
	if notifier == nil {
		notifier = notify.NewConsole()
	}

	subject, message := notify.BookingSummary(booking, s.WhatsApp)
	if err := notifier.Notify(subject, message); err != nil {
		utils.LogEvent(s.RequestID, "notify", "send_failed", fmt.Sprintf("booking_id=%d err=%v", bookingID, err))
		return
	}
	utils.LogEvent(s.RequestID, "notify", "sent", fmt.Sprintf("booking_id=%d", bookingID))
}
