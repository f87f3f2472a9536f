package tabulator

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// fetch issues a single GET to the source. Responses with a non-2xx status are returned
// like any other response so that the body is still parsed.
func (t *Tabulator) fetch(ctx context.Context, url string) ([]byte, error) {
	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, transportError(err)
	}

	response, err := t.client.Do(rq)
	if err != nil {
		return nil, transportError(err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		t.log.Warn("source returned non-2xx status",
			zap.String("url", url),
			zap.Int("status", response.StatusCode))
	}

	t.log.Debug("fetched source data",
		zap.String("url", url),
		zap.Int("status", response.StatusCode),
		zap.Int("bytes", len(body)))

	return body, nil
}
