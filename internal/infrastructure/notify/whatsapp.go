package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
)

type whatsappPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// sendWhatsApp hace passthrough a la API de WhatsApp configurada por el
// negocio (proveedores tipo CallMeBot/Twilio gateway): POST JSON con el
// número destino y el texto, API key en header.
func (d *Dispatcher) sendWhatsApp(cfg entity.WhatsAppConfig, business *entity.Business, candidate *entity.Candidate) error {
	payload, err := json.Marshal(whatsappPayload{
		To:      cfg.Number,
		Message: buildMessage(business, candidate),
	})
	if err != nil {
		return fmt.Errorf("serializar payload whatsapp: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("armar request whatsapp: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("enviar a whatsapp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("whatsapp respondió %d", resp.StatusCode)
	}
	return nil
}
