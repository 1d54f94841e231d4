// Package notify despacha las notificaciones de "nuevo candidato" a los
// canales configurados por cada negocio (Telegram, email SMTP, WhatsApp
// vía API externa). El contrato es best-effort: un canal que falla se
// registra en el log y jamás afecta la respuesta al aplicante.
package notify

import (
	"fmt"
	"net/http"
	"time"

	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/pkg/logger"
)

// Asegura que Dispatcher implementa el puerto Notifier.
var _ usecase.Notifier = (*Dispatcher)(nil)

const channelTimeout = 10 * time.Second

// Dispatcher selecciona los canales activos del negocio y envía a cada uno.
type Dispatcher struct {
	log    *logger.Logger
	client *http.Client
}

// NewDispatcher construye el despachador con su propio cliente HTTP
// (timeout fijo por canal, sin reintentos).
func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		log:    log,
		client: &http.Client{Timeout: channelTimeout},
	}
}

// NotifyNewCandidate envía la notificación a todos los canales activos del
// negocio. Se invoca desde una goroutine: aquí ya no hay request que
// bloquear, pero cada canal mantiene su timeout propio.
func (d *Dispatcher) NotifyNewCandidate(business *entity.Business, candidate *entity.Candidate) {
	msg := buildMessage(business, candidate)

	if business.Notif.Telegram.Active {
		if err := d.sendTelegram(business.Notif.Telegram, msg); err != nil {
			d.warn("telegram", business, err)
		}
	}
	if business.Notif.Email.Active {
		if err := d.sendEmail(business.Notif.Email, business, candidate); err != nil {
			d.warn("email", business, err)
		}
	}
	if business.Notif.WhatsApp.Active {
		if err := d.sendWhatsApp(business.Notif.WhatsApp, business, candidate); err != nil {
			d.warn("whatsapp", business, err)
		}
	}
	if business.Notif.Sheets.Active {
		// Integración Google Sheets: por ahora solo configuración guardada,
		// la escritura en la hoja requiere OAuth del lado del negocio.
		d.log.Debug().
			Str("business", business.ID).
			Str("spreadsheet", business.Notif.Sheets.SpreadsheetID).
			Msg("canal sheets activo pero sin despacho implementado")
	}
}

func (d *Dispatcher) warn(channel string, business *entity.Business, err error) {
	d.log.Warn().
		Err(err).
		Str("channel", channel).
		Str("business", business.ID).
		Msg("fallo al enviar notificación")
}

// buildMessage arma el texto común de los canales de mensajería:
// nombre del negocio + datos de contacto del candidato.
func buildMessage(business *entity.Business, candidate *entity.Candidate) string {
	return fmt.Sprintf(
		"Nuevo candidato para %s\n\nNombre: %s\nEmail: %s\nTeléfono: %s",
		business.Name, candidate.Name, candidate.Email, candidate.Phone,
	)
}
