package usecase

import (
	"time"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

// BusinessUseCase perfil público y configuración del negocio.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// GetProfile devuelve el perfil completo del negocio autenticado.
func (uc *BusinessUseCase) GetProfile(businessID string) (*dto.BusinessProfile, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ProfileFromBusiness(business), nil
}

// GetPublicBySlug devuelve la proyección mínima para el formulario público.
func (uc *BusinessUseCase) GetPublicBySlug(slug string) (*dto.PublicBusiness, error) {
	business, err := uc.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PublicBusiness{
		ID:                business.ID,
		Name:              business.Name,
		Slug:              business.Slug,
		Phone:             business.Phone,
		Address:           business.Address,
		Description:       business.Description,
		RequestedPosition: business.RequestedPosition,
		Requirements:      business.Requirements,
		Accepting:         business.Accepting,
	}, nil
}

// UpdateConfig aplica un patch disperso sobre el perfil y la configuración
// de notificaciones: solo los campos presentes se escriben, updated_at se
// toca siempre. Campos desconocidos del JSON nunca llegan aquí (el decode
// tipado los descarta), campos conocidos ausentes quedan intactos.
func (uc *BusinessUseCase) UpdateConfig(businessID string, in dto.UpdateConfigRequest) (*dto.BusinessProfile, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	applyConfigPatch(business, in)
	business.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProfile(business); err != nil {
		return nil, err
	}
	return dto.ProfileFromBusiness(business), nil
}

func applyConfigPatch(b *entity.Business, in dto.UpdateConfigRequest) {
	setString(&b.Name, in.Name)
	setString(&b.Phone, in.Phone)
	setString(&b.Address, in.Address)
	setString(&b.Description, in.Description)
	setString(&b.RequestedPosition, in.RequestedPosition)
	setString(&b.Requirements, in.Requirements)
	setBool(&b.Accepting, in.Accepting)
	setString(&b.WhatsApp, in.WhatsApp)
	setString(&b.Facebook, in.Facebook)
	setString(&b.Instagram, in.Instagram)

	if p := in.Telegram; p != nil {
		setBool(&b.Notif.Telegram.Active, p.Active)
		setString(&b.Notif.Telegram.BotToken, p.BotToken)
		setString(&b.Notif.Telegram.ChatID, p.ChatID)
	}
	if p := in.Email; p != nil {
		setBool(&b.Notif.Email.Active, p.Active)
		setString(&b.Notif.Email.SMTPHost, p.SMTPHost)
		setInt(&b.Notif.Email.SMTPPort, p.SMTPPort)
		setString(&b.Notif.Email.Username, p.Username)
		setString(&b.Notif.Email.Password, p.Password)
		setString(&b.Notif.Email.Sender, p.Sender)
	}
	if p := in.WhatsAppNotif; p != nil {
		setBool(&b.Notif.WhatsApp.Active, p.Active)
		setString(&b.Notif.WhatsApp.APIURL, p.APIURL)
		setString(&b.Notif.WhatsApp.APIKey, p.APIKey)
		setString(&b.Notif.WhatsApp.Number, p.Number)
	}
	if p := in.Sheets; p != nil {
		setBool(&b.Notif.Sheets.Active, p.Active)
		setString(&b.Notif.Sheets.SpreadsheetID, p.SpreadsheetID)
		setString(&b.Notif.Sheets.APIKey, p.APIKey)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
