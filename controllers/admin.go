package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"go-register/models"
	"go-register/register"
	"go-register/utils"
)

// AdminController handles the PIN gate, settings and the sales report
type AdminController struct {
	Session      *register.Session
	Journal      *register.Journal
	EmailService *utils.EmailService
	SettingsPath string
}

// NewAdminController creates a new AdminController
func NewAdminController(session *register.Session, journal *register.Journal, emailService *utils.EmailService, settingsPath string) *AdminController {
	return &AdminController{
		Session:      session,
		Journal:      journal,
		EmailService: emailService,
		SettingsPath: settingsPath,
	}
}

// Login checks the admin PIN and issues a session token
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !utils.CheckAdminPIN(req.PIN) {
		http.Error(w, "Wrong PIN", http.StatusUnauthorized)
		return
	}
	token, err := utils.GenerateJWT("admin")
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"token": token})
}

// GetSettings returns the current register settings (Admin only)
func (ac *AdminController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ac.Session.Settings())
}

// UpdateSettings applies and persists new settings (Admin only)
func (ac *AdminController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	settings := ac.Session.Settings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if settings.BigNoteThresholdCents <= 0 {
		settings.BigNoteThresholdCents = models.DefaultSettings().BigNoteThresholdCents
	}
	ac.Session.UpdateSettings(settings)
	if ac.SettingsPath != "" {
		if err := utils.SaveSettings(ac.SettingsPath, settings); err != nil {
			// the running register keeps the new settings either way
			log.Printf("saving settings: %v", err)
		}
	}
	writeJSON(w, settings)
}

// GetSales returns the day's completed sales and their totals
// (Admin only)
func (ac *AdminController) GetSales(w http.ResponseWriter, r *http.Request) {
	count, revenue, items := ac.Journal.Summary()
	writeJSON(w, map[string]interface{}{
		"sales":         ac.Journal.Sales(),
		"count":         count,
		"revenue_cents": revenue,
		"items":         items,
	})
}

// SendReport mails the sales summary to the shop owner (Admin only)
func (ac *AdminController) SendReport(w http.ResponseWriter, r *http.Request) {
	if ac.EmailService == nil {
		http.Error(w, "Email is not configured", http.StatusServiceUnavailable)
		return
	}
	var req struct {
		To string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	to := req.To
	if to == "" {
		to = os.Getenv("REPORT_EMAIL")
	}
	if to == "" {
		http.Error(w, "No recipient configured", http.StatusBadRequest)
		return
	}
	if err := ac.EmailService.SendSalesReport(to, ac.Journal.Sales()); err != nil {
		log.Printf("sending sales report: %v", err)
		http.Error(w, "Error sending report", http.StatusBadGateway)
		return
	}
	writeJSON(w, "Report sent")
}
