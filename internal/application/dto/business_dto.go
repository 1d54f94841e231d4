package dto

// PublicBusiness proyección mínima para el formulario público de aplicación.
// Nunca expone email de login, secretos ni configuración de notificaciones.
type PublicBusiness struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	RequestedPosition string `json:"requested_position"`
	Requirements      string `json:"requirements"`
	Accepting         bool   `json:"accepting"`
}

// UpdateConfigRequest patch disperso del perfil y la configuración del
// negocio. Solo los campos presentes (punteros no nil) se aplican; campos
// desconocidos en el JSON se ignoran sin error.
type UpdateConfigRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Description       *string `json:"description"`
	RequestedPosition *string `json:"requested_position"`
	Requirements      *string `json:"requirements"`
	Accepting         *bool   `json:"accepting"`
	WhatsApp          *string `json:"whatsapp"`
	Facebook          *string `json:"facebook"`
	Instagram         *string `json:"instagram"`

	Telegram      *TelegramPatch `json:"telegram"`
	Email         *EmailPatch    `json:"email"`
	WhatsAppNotif *WhatsAppPatch `json:"whatsapp_notif"`
	Sheets        *SheetsPatch   `json:"sheets"`
}

// TelegramPatch patch del canal Telegram.
type TelegramPatch struct {
	Active   *bool   `json:"active"`
	BotToken *string `json:"bot_token"`
	ChatID   *string `json:"chat_id"`
}

// EmailPatch patch del canal email/SMTP.
type EmailPatch struct {
	Active   *bool   `json:"active"`
	SMTPHost *string `json:"smtp_host"`
	SMTPPort *int    `json:"smtp_port"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Sender   *string `json:"sender"`
}

// WhatsAppPatch patch del canal WhatsApp.
type WhatsAppPatch struct {
	Active *bool   `json:"active"`
	APIURL *string `json:"api_url"`
	APIKey *string `json:"api_key"`
	Number *string `json:"number"`
}

// SheetsPatch patch de la integración Google Sheets.
type SheetsPatch struct {
	Active        *bool   `json:"active"`
	SpreadsheetID *string `json:"spreadsheet_id"`
	APIKey        *string `json:"api_key"`
}
