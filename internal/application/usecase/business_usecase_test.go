package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
)

func negocioCompleto() *entity.Business {
	return &entity.Business{
		ID:                negocioA,
		Name:              "Café Luna",
		Slug:              "cafe-luna-abc123",
		Email:             "dueno@cafeluna.com",
		Phone:             "555-0001",
		Address:           "Calle 1 #2-3",
		Description:       "Cafetería de barrio",
		RequestedPosition: "Mesera",
		Requirements:      "Experiencia mínima",
		Accepting:         true,
		Notif: entity.NotificationConfig{
			Telegram: entity.TelegramConfig{Active: true, BotToken: "bot-original", ChatID: "chat-1"},
			Email:    entity.EmailConfig{Active: true, SMTPHost: "smtp.luna.com", SMTPPort: 587, Username: "u", Password: "p", Sender: "s@luna.com"},
		},
		CreatedAt: time.Now().Add(-48 * time.Hour),
		UpdatedAt: time.Now().Add(-24 * time.Hour),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateConfig — patch disperso
// ──────────────────────────────────────────────────────────────────────────────

// Solo los campos presentes del patch se escriben; el resto del perfil y los
// demás canales quedan exactamente como estaban.
func TestUpdateConfig_PatchParcialNoTocaElResto(t *testing.T) {
	business := negocioCompleto()
	antes := business.UpdatedAt
	repo := newFakeBusinessRepo(business)
	uc := usecase.NewBusinessUseCase(repo)

	cerrado := false
	token := "bot-nuevo"
	profile, err := uc.UpdateConfig(negocioA, dto.UpdateConfigRequest{
		Accepting: &cerrado,
		Telegram:  &dto.TelegramPatch{BotToken: &token},
	})
	require.NoError(t, err)

	// Campos parcheados.
	assert.False(t, profile.Accepting)
	assert.Equal(t, "bot-nuevo", profile.Notifications.Telegram.BotToken)

	// Dentro del mismo sub-bloque, lo no enviado no cambia.
	assert.True(t, profile.Notifications.Telegram.Active, "Active no venía en el patch")
	assert.Equal(t, "chat-1", profile.Notifications.Telegram.ChatID)

	// Perfil y demás canales intactos.
	stored, _ := repo.GetByID(negocioA)
	assert.Equal(t, "Café Luna", stored.Name)
	assert.Equal(t, "555-0001", stored.Phone)
	assert.Equal(t, "Mesera", stored.RequestedPosition)
	assert.Equal(t, "smtp.luna.com", stored.Notif.Email.SMTPHost)
	assert.Equal(t, 587, stored.Notif.Email.SMTPPort)
	assert.True(t, stored.Notif.Email.Active, "el canal email no venía en el patch")

	// updated_at se toca siempre que hay patch.
	assert.True(t, stored.UpdatedAt.After(antes), "UpdatedAt debe avanzar")
}

// Email, slug y password no son alcanzables por esta vía: el patch no tiene
// esos campos y el repo escribe una lista fija.
func TestUpdateConfig_NoMutaIdentidad(t *testing.T) {
	business := negocioCompleto()
	repo := newFakeBusinessRepo(business)
	uc := usecase.NewBusinessUseCase(repo)

	nombre := "Café Luna Centro"
	_, err := uc.UpdateConfig(negocioA, dto.UpdateConfigRequest{Name: &nombre})
	require.NoError(t, err)

	stored, _ := repo.GetByID(negocioA)
	assert.Equal(t, "Café Luna Centro", stored.Name)
	assert.Equal(t, "cafe-luna-abc123", stored.Slug, "el slug no cambia al renombrar")
	assert.Equal(t, "dueno@cafeluna.com", stored.Email)
}

// Un sub-bloque completo enciende un canal que estaba sin configurar.
func TestUpdateConfig_ActivaCanalNuevo(t *testing.T) {
	repo := newFakeBusinessRepo(negocioCompleto())
	uc := usecase.NewBusinessUseCase(repo)

	activo := true
	url := "https://api.whats.example/send"
	key := "k-123"
	numero := "+57300000000"
	profile, err := uc.UpdateConfig(negocioA, dto.UpdateConfigRequest{
		WhatsAppNotif: &dto.WhatsAppPatch{Active: &activo, APIURL: &url, APIKey: &key, Number: &numero},
	})
	require.NoError(t, err)

	assert.True(t, profile.Notifications.WhatsApp.Active)
	assert.Equal(t, url, profile.Notifications.WhatsApp.APIURL)
	assert.Equal(t, numero, profile.Notifications.WhatsApp.Number)
}

func TestUpdateConfig_NegocioInexistente(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())

	abierto := true
	_, err := uc.UpdateConfig("no-existe", dto.UpdateConfigRequest{Accepting: &abierto})
	assert.Equal(t, domain.ErrNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección pública
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPublicBySlug_ProyeccionMinima(t *testing.T) {
	repo := newFakeBusinessRepo(negocioCompleto())
	uc := usecase.NewBusinessUseCase(repo)

	public, err := uc.GetPublicBySlug("cafe-luna-abc123")
	require.NoError(t, err)
	assert.Equal(t, "Café Luna", public.Name)
	assert.Equal(t, "Mesera", public.RequestedPosition)
	assert.True(t, public.Accepting)

	_, err = uc.GetPublicBySlug("slug-fantasma")
	assert.Equal(t, domain.ErrNotFound, err)
}
