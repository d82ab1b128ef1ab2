package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"debt_reconciler/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const defaultFetchTimeout = 3 * time.Second

var ErrUnexpectedStatus = errors.New("unexpected response status")

// Client fetches the debts, payment_plans and payments streams from the
// upstream collections API. Each endpoint serves a flat JSON array.
type Client struct {
	httpClient      *http.Client
	debtsURL        string
	paymentPlansURL string
	paymentsURL     string
	log             *logrus.Logger
}

var _ interfaces.IDebtSource = (*Client)(nil)

type ClientParams struct {
	DebtsURL        string
	PaymentPlansURL string
	PaymentsURL     string
	// Timeout applies per request. Zero falls back to defaultFetchTimeout.
	Timeout time.Duration
	Logger  *logrus.Logger
}

func NewClient(p ClientParams) *Client {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	log := p.Logger
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		httpClient:      &http.Client{Timeout: timeout},
		debtsURL:        p.DebtsURL,
		paymentPlansURL: p.PaymentPlansURL,
		paymentsURL:     p.PaymentsURL,
		log:             log,
	}
}

func (c *Client) FetchDebts(ctx context.Context) ([]interfaces.DebtRecord, error) {
	var out []interfaces.DebtRecord
	if err := c.getJSON(ctx, c.debtsURL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchPaymentPlans(ctx context.Context) ([]interfaces.PaymentPlanRecord, error) {
	var out []interfaces.PaymentPlanRecord
	if err := c.getJSON(ctx, c.paymentPlansURL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchPayments(ctx context.Context) ([]interfaces.PaymentRecord, error) {
	var out []interfaces.PaymentRecord
	if err := c.getJSON(ctx, c.paymentsURL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	c.log.Debugf("[collections][client] fetch start url=%s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("[collections][client] fetch failed url=%s err=%v", url, err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("[collections][client] fetch failed url=%s status=%d", url, resp.StatusCode)
		return fmt.Errorf("%w: %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, url, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	c.log.Debugf("[collections][client] fetch success url=%s bytes=%d", url, len(body))
	return nil
}
