package entity

import "time"

// Business representa un negocio registrado (tenant, unidad de aislamiento de datos).
// Cada candidato y cada sesión pertenecen exactamente a un Business.
type Business struct {
	ID                string
	Name              string
	Slug              string // identificador URL-safe único, usado en el enlace público de aplicación
	Email             string // login, único global, siempre en minúsculas
	PasswordHash      string // bcrypt hash, nunca plano después de persistir
	Phone             string
	Address           string
	Description       string
	RequestedPosition string // puesto buscado, texto libre
	Requirements      string
	Accepting         bool // si false, el formulario público rechaza aplicaciones
	WhatsApp          string
	Facebook          string
	Instagram         string
	Notif             NotificationConfig
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NotificationConfig agrupa los canales de notificación del negocio.
// Los secretos (tokens, contraseñas SMTP) se guardan como configuración
// opaca; no se validan contra el proveedor.
type NotificationConfig struct {
	Telegram TelegramConfig
	Email    EmailConfig
	WhatsApp WhatsAppConfig
	Sheets   SheetsConfig
}

// TelegramConfig canal Telegram (Bot API sendMessage).
type TelegramConfig struct {
	Active   bool
	BotToken string
	ChatID   string
}

// EmailConfig canal email vía SMTP propio del negocio.
type EmailConfig struct {
	Active   bool
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	Sender   string
}

// WhatsAppConfig canal WhatsApp vía API externa (passthrough genérico).
type WhatsAppConfig struct {
	Active bool
	APIURL string
	APIKey string
	Number string
}

// SheetsConfig integración Google Sheets (solo configuración por ahora,
// el despacho no escribe en la hoja).
type SheetsConfig struct {
	Active        bool
	SpreadsheetID string
	APIKey        string
}
