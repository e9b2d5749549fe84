package contact

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"cadenza/globals"
	"cadenza/mailer"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
)

type contactRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Subject         string `json:"subject"`
	Message         string `json:"message"`
	FestivalName    string `json:"festivalName,omitempty"`
	FestivalDate    string `json:"festivalDate,omitempty"`
	EventDate       string `json:"eventDate,omitempty"`
	EventVenue      string `json:"eventVenue,omitempty"`
	BudgetRange     string `json:"budgetRange,omitempty"`
	ArtistRequested string `json:"artistRequested,omitempty"`
}

func (c contactRequest) formatBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact request from %s <%s>\n\n", c.Name, c.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n%s\n", c.Subject, c.Message)

	optional := []struct{ label, value string }{
		{"Festival", c.FestivalName},
		{"Festival date", c.FestivalDate},
		{"Event date", c.EventDate},
		{"Venue", c.EventVenue},
		{"Budget", c.BudgetRange},
		{"Artist requested", c.ArtistRequested},
	}
	wrote := false
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		if !wrote {
			b.WriteString("\nBooking details:\n")
			wrote = true
		}
		fmt.Fprintf(&b, "  %s: %s\n", f.label, f.value)
	}
	return b.String()
}

// SendContact forwards a contact-form submission to the configured inbox.
//
// POST /api/contact
func SendContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Subject == "" || req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name, subject and message are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	to := globals.Getenv("CONTACT_EMAIL", "bookings@cadenza.live")
	subject := "[Contact] " + req.Subject

	if err := mailer.Send(to, subject, req.formatBody()); err != nil {
		log.Printf("[contact] send failed: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError,
			utils.M{"message": "Failed to send message, please try again later"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Message sent successfully"})
}
