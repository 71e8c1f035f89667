package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// probeLogoURL checks whether a company logo exists on companiesmarketcap and
// returns its URL, or "" when the probe fails. The header falls back to a plain
// symbol in that case, so failures here are never errors.
func probeLogoURL(ctx context.Context, client *http.Client, symbol string) string {
	logoURL := fmt.Sprintf("https://companiesmarketcap.com/img/company-logos/64/%s.webp",
		strings.ToUpper(symbol))

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, logoURL, nil)
	if err != nil {
		return ""
	}
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	return logoURL
}
