package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

var whatsappHTTPClient = &http.Client{Timeout: 10 * time.Second}

// SendFormSubmissionNotification sends a WhatsApp text message to the
// operations number summarizing a form submission. The WhatsApp Business API
// endpoint and token come from the environment; when they are not configured
// the send is skipped.
func SendFormSubmissionNotification(label string, fields map[string]string) error {
	apiURL := os.Getenv("WHATSAPP_API_URL")
	token := os.Getenv("WHATSAPP_API_TOKEN")
	to := os.Getenv("WHATSAPP_NOTIFY_NUMBER")
	if apiURL == "" || to == "" {
		LogDebug("WhatsApp notification skipped - API not configured")
		return nil
	}

	var lines strings.Builder
	lines.WriteString(fmt.Sprintf("New %s submission\n", label))
	for _, key := range sortedKeys(fields) {
		lines.WriteString(fmt.Sprintf("%s: %s\n", key, fields[key]))
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": lines.String()},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := whatsappHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}
	return nil
}
