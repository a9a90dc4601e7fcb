package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sender шлёт уведомления через SendGrid REST API.
// Пустой apiKey выключает отправку (локальная разработка).
type Sender struct {
	apiKey      string
	senderEmail string
	senderName  string
	client      *http.Client
}

func NewSender(apiKey, senderEmail string) *Sender {
	return &Sender{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  "LearnPlatform",
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgRequest struct {
	Personalizations []struct {
		To []sgEmail `json:"to"`
	} `json:"personalizations"`
	From    sgEmail     `json:"from"`
	Subject string      `json:"subject"`
	Content []sgContent `json:"content"`
}

// SendTrackingRequest уведомляет ученика о новом запросе на отслеживание.
func (s *Sender) SendTrackingRequest(toEmail, guardianName string) error {
	if s.apiKey == "" {
		return nil
	}

	html := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif;">
			<h2>Новый запрос на отслеживание</h2>
			<p>%s хочет отслеживать ваш прогресс обучения.</p>
			<p>Принять или отклонить запрос можно в приложении, в разделе профиля.</p>
		</body>
		</html>`, guardianName)

	body := sgRequest{
		Personalizations: []struct {
			To []sgEmail `json:"to"`
		}{
			{To: []sgEmail{{Email: toEmail}}},
		},
		From: sgEmail{
			Email: s.senderEmail,
			Name:  s.senderName,
		},
		Subject: "Запрос на отслеживание прогресса",
		Content: []sgContent{{Type: "text/html", Value: html}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.sendgrid.com/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
