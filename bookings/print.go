package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"cadenza/db"
	"cadenza/globals"
	"cadenza/models"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// signBooking produces the check-in payload embedded in the QR code:
// bookingID|artistID|signature.
func signBooking(bookingID, artistID string) string {
	data := fmt.Sprintf("%s|%s", bookingID, artistID)
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintBooking renders the booking confirmation sheet as a PDF with a QR
// check-in code. Only approved or completed bookings have a sheet.
func PrintBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	bookingID := ps.ByName("id")

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	status := NormalizeStatus(booking.Status)
	if status != models.BookingApproved && status != models.BookingCompleted {
		utils.RespondWithError(w, http.StatusConflict, "Only approved bookings can be printed")
		return
	}

	var artist models.Artist
	artistName := booking.ArtistID
	if err := db.ArtistsCollection.FindOne(ctx, bson.M{"artistid": booking.ArtistID}).Decode(&artist); err == nil {
		artistName = artist.Name
	}

	qrPNG, err := qrcode.Encode(signBooking(booking.BookingID, booking.ArtistID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Artist: %s", artistName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Event: %s", booking.EventName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", booking.Date))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Location: %s", booking.Location))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", status))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=booking-%s.pdf", booking.BookingID))
	w.Write(buf.Bytes())
}
