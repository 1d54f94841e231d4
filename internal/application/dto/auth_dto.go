package dto

import (
	"time"

	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
)

// RegisterRequest entrada para registrar un negocio.
type RegisterRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	Phone             string `json:"phone" validate:"omitempty,max=30"`
	RequestedPosition string `json:"requested_position" validate:"omitempty,max=200"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse salida del registro: lo mínimo que el panel necesita
// para redirigir al dashboard.
type RegisterResponse struct {
	Business BusinessSummary `json:"business"`
}

// BusinessSummary proyección corta de un negocio.
type BusinessSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Email string `json:"email"`
}

// BusinessProfile perfil completo del negocio autenticado, incluida la
// configuración de canales de notificación (el panel la edita en línea).
type BusinessProfile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	Description       string    `json:"description"`
	RequestedPosition string    `json:"requested_position"`
	Requirements      string    `json:"requirements"`
	Accepting         bool      `json:"accepting"`
	WhatsApp          string    `json:"whatsapp"`
	Facebook          string    `json:"facebook"`
	Instagram         string    `json:"instagram"`
	Notifications     NotifView `json:"notifications"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NotifView configuración de notificaciones tal como la edita el panel.
type NotifView struct {
	Telegram TelegramView `json:"telegram"`
	Email    EmailView    `json:"email"`
	WhatsApp WhatsAppView `json:"whatsapp"`
	Sheets   SheetsView   `json:"sheets"`
}

// TelegramView canal Telegram.
type TelegramView struct {
	Active   bool   `json:"active"`
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

// EmailView canal email/SMTP.
type EmailView struct {
	Active   bool   `json:"active"`
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Sender   string `json:"sender"`
}

// WhatsAppView canal WhatsApp (API externa).
type WhatsAppView struct {
	Active bool   `json:"active"`
	APIURL string `json:"api_url"`
	APIKey string `json:"api_key"`
	Number string `json:"number"`
}

// SheetsView integración Google Sheets (solo configuración).
type SheetsView struct {
	Active        bool   `json:"active"`
	SpreadsheetID string `json:"spreadsheet_id"`
	APIKey        string `json:"api_key"`
}

// ProfileFromBusiness mapea la entidad al perfil completo que consume el panel.
func ProfileFromBusiness(b *entity.Business) *BusinessProfile {
	if b == nil {
		return nil
	}
	return &BusinessProfile{
		ID:                b.ID,
		Name:              b.Name,
		Slug:              b.Slug,
		Email:             b.Email,
		Phone:             b.Phone,
		Address:           b.Address,
		Description:       b.Description,
		RequestedPosition: b.RequestedPosition,
		Requirements:      b.Requirements,
		Accepting:         b.Accepting,
		WhatsApp:          b.WhatsApp,
		Facebook:          b.Facebook,
		Instagram:         b.Instagram,
		Notifications: NotifView{
			Telegram: TelegramView{
				Active:   b.Notif.Telegram.Active,
				BotToken: b.Notif.Telegram.BotToken,
				ChatID:   b.Notif.Telegram.ChatID,
			},
			Email: EmailView{
				Active:   b.Notif.Email.Active,
				SMTPHost: b.Notif.Email.SMTPHost,
				SMTPPort: b.Notif.Email.SMTPPort,
				Username: b.Notif.Email.Username,
				Password: b.Notif.Email.Password,
				Sender:   b.Notif.Email.Sender,
			},
			WhatsApp: WhatsAppView{
				Active: b.Notif.WhatsApp.Active,
				APIURL: b.Notif.WhatsApp.APIURL,
				APIKey: b.Notif.WhatsApp.APIKey,
				Number: b.Notif.WhatsApp.Number,
			},
			Sheets: SheetsView{
				Active:        b.Notif.Sheets.Active,
				SpreadsheetID: b.Notif.Sheets.SpreadsheetID,
				APIKey:        b.Notif.Sheets.APIKey,
			},
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
