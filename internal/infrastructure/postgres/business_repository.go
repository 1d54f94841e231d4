package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

// Asegura que BusinessRepo implementa repository.BusinessRepository.
var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepo {
	return &BusinessRepo{pool: pool}
}

const businessColumns = `
	id, name, slug, email, password_hash, phone, address, description,
	requested_position, requirements, accepting, whatsapp, facebook, instagram,
	notif_telegram_active, notif_telegram_bot_token, notif_telegram_chat_id,
	notif_email_active, notif_email_smtp_host, notif_email_smtp_port,
	notif_email_username, notif_email_password, notif_email_sender,
	notif_whatsapp_active, notif_whatsapp_api_url, notif_whatsapp_api_key,
	notif_whatsapp_number, sheets_active, sheets_spreadsheet_id, sheets_api_key,
	created_at, updated_at`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(
		&b.ID, &b.Name, &b.Slug, &b.Email, &b.PasswordHash, &b.Phone, &b.Address, &b.Description,
		&b.RequestedPosition, &b.Requirements, &b.Accepting, &b.WhatsApp, &b.Facebook, &b.Instagram,
		&b.Notif.Telegram.Active, &b.Notif.Telegram.BotToken, &b.Notif.Telegram.ChatID,
		&b.Notif.Email.Active, &b.Notif.Email.SMTPHost, &b.Notif.Email.SMTPPort,
		&b.Notif.Email.Username, &b.Notif.Email.Password, &b.Notif.Email.Sender,
		&b.Notif.WhatsApp.Active, &b.Notif.WhatsApp.APIURL, &b.Notif.WhatsApp.APIKey,
		&b.Notif.WhatsApp.Number, &b.Notif.Sheets.Active, &b.Notif.Sheets.SpreadsheetID, &b.Notif.Sheets.APIKey,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un nuevo negocio. Devuelve ErrDuplicateBusiness si el
// email (o el slug) ya existe.
func (r *BusinessRepo) Create(b *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
		        $27, $28, $29, $30, $31, $32)`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.Name, b.Slug, b.Email, b.PasswordHash, b.Phone, b.Address, b.Description,
		b.RequestedPosition, b.Requirements, b.Accepting, b.WhatsApp, b.Facebook, b.Instagram,
		b.Notif.Telegram.Active, b.Notif.Telegram.BotToken, b.Notif.Telegram.ChatID,
		b.Notif.Email.Active, b.Notif.Email.SMTPHost, b.Notif.Email.SMTPPort,
		b.Notif.Email.Username, b.Notif.Email.Password, b.Notif.Email.Sender,
		b.Notif.WhatsApp.Active, b.Notif.WhatsApp.APIURL, b.Notif.WhatsApp.APIKey,
		b.Notif.WhatsApp.Number, b.Notif.Sheets.Active, b.Notif.Sheets.SpreadsheetID, b.Notif.Sheets.APIKey,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBusiness
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.getBy("id", id)
}

// GetByEmail obtiene un negocio por email de login.
func (r *BusinessRepo) GetByEmail(email string) (*entity.Business, error) {
	return r.getBy("email", email)
}

// GetBySlug obtiene un negocio por su slug público.
func (r *BusinessRepo) GetBySlug(slug string) (*entity.Business, error) {
	return r.getBy("slug", slug)
}

func (r *BusinessRepo) getBy(column, value string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE ` + column + ` = $1`
	b, err := scanBusiness(r.pool.QueryRow(context.Background(), query, value))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by %s: %w", column, err)
	}
	return b, nil
}

// UpdateProfile escribe la lista fija de campos mutables del perfil y la
// configuración de notificaciones. Email, slug y password_hash quedan fuera
// a propósito: no son editables por esta vía.
func (r *BusinessRepo) UpdateProfile(b *entity.Business) error {
	query := `
		UPDATE businesses SET
			name = $2, phone = $3, address = $4, description = $5,
			requested_position = $6, requirements = $7, accepting = $8,
			whatsapp = $9, facebook = $10, instagram = $11,
			notif_telegram_active = $12, notif_telegram_bot_token = $13, notif_telegram_chat_id = $14,
			notif_email_active = $15, notif_email_smtp_host = $16, notif_email_smtp_port = $17,
			notif_email_username = $18, notif_email_password = $19, notif_email_sender = $20,
			notif_whatsapp_active = $21, notif_whatsapp_api_url = $22, notif_whatsapp_api_key = $23,
			notif_whatsapp_number = $24, sheets_active = $25, sheets_spreadsheet_id = $26,
			sheets_api_key = $27, updated_at = $28
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		b.ID, b.Name, b.Phone, b.Address, b.Description,
		b.RequestedPosition, b.Requirements, b.Accepting,
		b.WhatsApp, b.Facebook, b.Instagram,
		b.Notif.Telegram.Active, b.Notif.Telegram.BotToken, b.Notif.Telegram.ChatID,
		b.Notif.Email.Active, b.Notif.Email.SMTPHost, b.Notif.Email.SMTPPort,
		b.Notif.Email.Username, b.Notif.Email.Password, b.Notif.Email.Sender,
		b.Notif.WhatsApp.Active, b.Notif.WhatsApp.APIURL, b.Notif.WhatsApp.APIKey,
		b.Notif.WhatsApp.Number, b.Notif.Sheets.Active, b.Notif.Sheets.SpreadsheetID,
		b.Notif.Sheets.APIKey, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
