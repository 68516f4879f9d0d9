package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// WhatsAppClient talks to an Evolution API instance. When disabled it is a
// no-op, which keeps local development free of external calls.
type WhatsAppClient struct {
	baseURL  string
	apiKey   string
	instance string
	enabled  bool
	http     *http.Client
}

func NewWhatsAppClient(baseURL, apiKey, instance string, enabled bool) *WhatsAppClient {
	if enabled && apiKey == "" {
		log.Println("whatsapp enabled but WHATSAPP_API_KEY is empty; notifications will fail")
	}
	return &WhatsAppClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		instance: instance,
		enabled:  enabled,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WhatsAppClient) SendCheckIn(phone, petName, clientName, serviceNames string) error {
	if serviceNames == "" {
		serviceNames = "serviço(s) agendado(s)"
	}
	msg := fmt.Sprintf(
		"Olá, %s! 🐾\nRecebemos %s para %s no Cisne Branco.\nVocê será avisado(a) quando o serviço estiver concluído!",
		clientName, petName, serviceNames,
	)
	return w.send(phone, msg)
}

func (w *WhatsAppClient) SendReady(phone, petName, clientName string) error {
	msg := fmt.Sprintf(
		"Olá, %s! 🐾\n%s está pronto(a) para ser retirado(a) no Cisne Branco!",
		clientName, petName,
	)
	return w.send(phone, msg)
}

func (w *WhatsAppClient) send(phone, message string) error {
	if !w.enabled {
		return nil
	}

	number := formatPhone(phone)
	if len(number) < 12 {
		return fmt.Errorf("invalid phone %q", phone)
	}

	body, err := json.Marshal(map[string]any{
		"number": number,
		"text":   message,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/message/sendText/%s", w.baseURL, w.instance)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", w.apiKey)

	resp, err := w.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("evolution api returned %d", resp.StatusCode)
	}
	return nil
}

// formatPhone strips punctuation and prefixes the Brazilian country code
// when missing.
func formatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	if n == "" {
		return n
	}
	if !strings.HasPrefix(n, "55") {
		n = "55" + n
	}
	return n
}
