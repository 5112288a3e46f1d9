package conditions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
)

const maxAttempts = 4

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// getJSON fetches url and decodes the body into out. Network errors and
// 429/5xx responses are retried with exponential backoff; everything else
// fails on the first attempt.
func (p *OpenMeteoProvider) getJSON(ctx context.Context, url string, out any) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := p.session.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			var netErr net.Error
			if errors.As(err, &netErr) {
				return err
			}
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
			he := &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
			if retryableStatus(he.Code) {
				return he
			}
			return backoff.Permanent(he)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.retryInitial
	exp.Multiplier = 2
	exp.Reset()

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(exp, maxAttempts-1), ctx))
}
