package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"payrollms/internal/domain/models"
)

// WebhookClient pushes generated-payroll events to an external consumer
// (report exporters, payment tooling) over a plain JSON webhook.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a webhook notifier targeting the given URL.
func NewWebhookClient(webhookURL string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        webhookURL,
	}
}

// payrollEvent is the wire payload for a generated payroll announcement.
type payrollEvent struct {
	Event       string    `json:"event"`
	EmployeeID  string    `json:"employee_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	GrossSalary float64   `json:"gross_salary"`
	NetSalary   float64   `json:"net_salary"`
	Status      string    `json:"status"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PayrollGenerated posts the event and fails on any non-2xx response.
func (c *WebhookClient) PayrollGenerated(ctx context.Context, payroll models.Payroll) error {
	event := payrollEvent{
		Event:       "payroll.generated",
		EmployeeID:  payroll.EmployeeID,
		Month:       payroll.Month,
		Year:        payroll.Year,
		GrossSalary: payroll.GrossSalary,
		NetSalary:   payroll.NetSalary,
		Status:      string(payroll.Status),
		GeneratedAt: payroll.CreatedAt,
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(event).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("failed to deliver payroll webhook: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("payroll webhook rejected with status %d", resp.StatusCode())
	}

	return nil
}
