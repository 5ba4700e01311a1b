package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

// UrgencyWebhookNotifier delivers the one-time urgent-project alert to
// an operations webhook (e.g. a Slack-compatible endpoint). An empty
// URL disables delivery, which keeps local setups working without the
// ops channel.
type UrgencyWebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.IUrgencyNotifier = (*UrgencyWebhookNotifier)(nil)

func NewUrgencyWebhookNotifier(url string) *UrgencyWebhookNotifier {
	return &UrgencyWebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// NewUrgencyWebhookNotifierFromEnv reads URGENCY_WEBHOOK_URL.
func NewUrgencyWebhookNotifierFromEnv() *UrgencyWebhookNotifier {
	url := getenvDefault("URGENCY_WEBHOOK_URL", "")
	if url == "" {
		logrus.Warn("URGENCY_WEBHOOK_URL not set, urgency alerts will be logged only")
	}
	return NewUrgencyWebhookNotifier(url)
}

type urgencyAlertPayload struct {
	ProjectID     string `json:"project_id"`
	ProjectNumber string `json:"project_number"`
	ClientName    string `json:"client_name"`
	EventName     string `json:"event_name"`
	EventDate     string `json:"event_date,omitempty"`
	MarginPercent string `json:"margin_percent"`
	Message       string `json:"message"`
}

func (n *UrgencyWebhookNotifier) SendUrgencyAlert(ctx context.Context, p entities.Project) error {
	payload := urgencyAlertPayload{
		ProjectID:     p.ID,
		ProjectNumber: p.ProjectNumber,
		ClientName:    p.ClientName,
		EventName:     p.EventName,
		EventDate:     p.EventDate,
		MarginPercent: fmt.Sprintf("%.2f", float64(p.Aggregates.MarginBps)/100),
		Message:       fmt.Sprintf("Urgent project %s priced with elevated margin", p.ProjectNumber),
	}

	if n.url == "" {
		logrus.WithFields(logrus.Fields{
			"project_id":     p.ID,
			"project_number": p.ProjectNumber,
		}).Info("urgency alert (no webhook configured)")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal urgency alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build urgency alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver urgency alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("urgency webhook returned status %d", resp.StatusCode)
	}

	logrus.WithFields(logrus.Fields{
		"project_id":     p.ID,
		"project_number": p.ProjectNumber,
	}).Info("urgency alert delivered")
	return nil
}
