package notify

import (
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
)

// sendEmail notifica al dueño por correo usando el SMTP configurado por el
// propio negocio. El destinatario es el remitente configurado (el dueño se
// escribe a sí mismo desde su cuenta).
func (d *Dispatcher) sendEmail(cfg entity.EmailConfig, business *entity.Business, candidate *entity.Candidate) error {
	m := mail.NewMessage()
	m.SetHeader("From", cfg.Sender)
	m.SetHeader("To", cfg.Sender)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo candidato: %s", candidate.Name))
	m.SetBody("text/plain", buildMessage(business, candidate))

	dialer := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar email SMTP: %w", err)
	}
	return nil
}
