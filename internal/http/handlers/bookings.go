package handlers

import (
	"net/http"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/notify"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func CreateBooking(env intconfig.Env) gin.HandlerFunc {
	notifier := notify.FromEnv(env)

	return func(c *gin.Context) {
		var input models.BookingInput
		if !BindJSONOrError(c, &input) {
			return
		}

		svc := services.BookingService{
			Notifier:  notifier,
			WhatsApp:  env.AgencyWhatsApp,
			RequestID: middleware.GetRequestID(c),
		}
		id, err := svc.Create(input)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"booking_id": id,
			"message":    "Booking inquiry submitted successfully!",
		})
	}
}

// GET /api/bookings (admin)
func GetBookings(c *gin.Context) {
	repo := repositories.BookingRepository{}
	list, err := repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type statusPayload struct {
	Status string `json:"status"`
}

// PUT /api/bookings/:id/status (admin)
func UpdateBookingStatus(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var payload statusPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.UpdateStatus(id, payload.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

// DELETE /api/bookings/:id (admin)
// Idempotent: deleting an already-deleted booking still reports success.
func DeleteBooking(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.BookingRepository{}
	if err := repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}

// GET /api/bookings/:id/voucher (admin)
func GetBookingVoucherPDF(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{DB: intconfig.DB},
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
