package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cadenza/db"
	"cadenza/mailer"
	"cadenza/rdx"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func sendVerificationEmail(toEmail string) {
	code := utils.GenerateRandomDigitString(6)
	if err := rdx.SetWithExpiry("verify:"+toEmail, code, 10*time.Minute); err != nil {
		log.Printf("Failed to cache verification code: %v", err)
		return
	}
	body := "Your verification code is: " + code
	if err := mailer.Send(toEmail, "Verify your email", body); err != nil {
		log.Printf("Failed to send verification email to %s: %v", toEmail, err)
	}
}

// ResendVerification re-sends the verification code for a pending account.
func ResendVerification(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": input.Email, "email_verified": false}).Err()
	if err != nil {
		// Do not leak whether the address exists.
		utils.SendResponse(w, http.StatusOK, nil, "If the account exists, a verification email was sent.", nil)
		return
	}

	go sendVerificationEmail(input.Email)
	utils.SendResponse(w, http.StatusOK, nil, "If the account exists, a verification email was sent.", nil)
}

// VerifyEmail consumes the emailed code and marks the account verified.
func VerifyEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	stored, err := rdx.RdxGet("verify:" + input.Email)
	if err != nil || stored != input.Code {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired code")
		return
	}

	_, err = db.UserCollection.UpdateOne(
		r.Context(),
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{"email_verified": true}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to verify user")
		return
	}

	rdx.RdxDel("verify:" + input.Email)
	utils.SendResponse(w, http.StatusOK, nil, "Email verified", nil)
}
