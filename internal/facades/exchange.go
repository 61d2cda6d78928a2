package facades

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// apiSuccessCode is the exchange's "all good" envelope code.
const apiSuccessCode = "00000"

// AccountInfo is the subset of the exchange account endpoint this service
// cares about; it only serves connectivity checks.
type AccountInfo struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// ExchangeHTTPFacade implements the deposit-ledger reader against the
// custodial exchange's signed REST API.
type ExchangeHTTPFacade struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	passphrase string
	client     *http.Client
}

// NewExchangeHTTPFacade creates a new facade with its own HTTP client.
// A slow exchange must not pin request goroutines, hence the hard timeout.
func NewExchangeHTTPFacade(baseURL, apiKey, apiSecret, passphrase string) *ExchangeHTTPFacade {
	return &ExchangeHTTPFacade{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		passphrase: passphrase,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

type apiEnvelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// sign produces the base64 HMAC-SHA256 request signature the exchange
// expects: timestamp + method + path(+query) over the API secret.
func (f *ExchangeHTTPFacade) sign(timestamp, method, pathWithQuery string) string {
	mac := hmac.New(sha256.New, []byte(f.apiSecret))
	mac.Write([]byte(timestamp + method + pathWithQuery))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (f *ExchangeHTTPFacade) get(ctx context.Context, path string, query url.Values, out any) error {
	pathWithQuery := path
	if len(query) > 0 {
		pathWithQuery += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+pathWithQuery, nil)
	if err != nil {
		return err
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ACCESS-KEY", f.apiKey)
	req.Header.Set("ACCESS-SIGN", f.sign(timestamp, http.MethodGet, pathWithQuery))
	req.Header.Set("ACCESS-TIMESTAMP", timestamp)
	req.Header.Set("ACCESS-PASSPHRASE", f.passphrase)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("exchange request failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("exchange returned non-2xx", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("exchange API returned status %d", resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode exchange response: %w", err)
	}
	if envelope.Code != apiSuccessCode {
		logger.Log.Errorw("exchange returned error code", "path", path, "code", envelope.Code, "msg", envelope.Msg)
		return fmt.Errorf("exchange API error %s: %s", envelope.Code, envelope.Msg)
	}

	return json.Unmarshal(envelope.Data, out)
}

// FetchDeposits returns the exchange's deposit records for a coin inside the
// [startMs, endMs] window, newest first, capped at limit.
func (f *ExchangeHTTPFacade) FetchDeposits(ctx context.Context, coin string, startMs, endMs int64, limit int) ([]models.DepositRecord, error) {
	query := url.Values{}
	query.Set("coin", coin)
	query.Set("startTime", strconv.FormatInt(startMs, 10))
	query.Set("endTime", strconv.FormatInt(endMs, 10))
	query.Set("limit", strconv.Itoa(limit))

	var records []models.DepositRecord
	if err := f.get(ctx, "/api/v2/spot/wallet/deposit-records", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetAccountInfo fetches the exchange account; used as a connectivity probe.
func (f *ExchangeHTTPFacade) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	var info AccountInfo
	if err := f.get(ctx, "/api/v2/spot/account/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
