package notify

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
)

type telegramSendMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// sendTelegram envía el mensaje por la Bot API (sendMessage).
func (d *Dispatcher) sendTelegram(cfg entity.TelegramConfig, text string) error {
	payload, err := json.Marshal(telegramSendMessage{ChatID: cfg.ChatID, Text: text})
	if err != nil {
		return fmt.Errorf("serializar payload telegram: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", cfg.BotToken)
	resp, err := d.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("enviar a telegram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("telegram respondió %d", resp.StatusCode)
	}
	return nil
}
