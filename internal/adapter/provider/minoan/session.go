package minoan

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/html"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
)

// initSession visits the booking landing page and then the search step, the way a browser would,
// so the client's cookie jar holds a session before the trips API is called.
// It returns the page's CSRF token, or an empty string if the page has none.
func (a *Adapter) initSession(ctx context.Context, client *http.Client, criteria domain.SearchCriteria) (string, error) {
	landingURL := a.baseURL + bookingPath
	a.log.Info().Str("url", landingURL).Msg("Visiting initial page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, landingURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrSessionBootstrap, err)
	}
	setBrowserHeaders(req)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSessionBootstrap, err)
	}
	defer resp.Body.Close()

	a.log.Info().Int("status", resp.StatusCode).Msg("Initial page status")
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: initial page returned status %d", domain.ErrSessionBootstrap, resp.StatusCode)
	}

	token, err := extractCSRFToken(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: parse initial page: %w", domain.ErrSessionBootstrap, err)
	}
	if token != "" {
		a.log.Debug().Msg("CSRF token found on initial page")
	}

	if err := a.visitSearchStep(ctx, client, criteria, token); err != nil {
		return "", err
	}

	return token, nil
}

// visitSearchStep loads step 1 of the booking flow. Its status is logged, not enforced.
func (a *Adapter) visitSearchStep(ctx context.Context, client *http.Client, criteria domain.SearchCriteria, token string) error {
	stepURL := a.BookingPageURL(criteria)
	a.log.Info().Str("url", stepURL).Msg("Visiting step 1 page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, stepURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build step 1 request: %w", domain.ErrSessionBootstrap, err)
	}
	setBrowserHeaders(req)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if token != "" {
		req.Header.Set(headerCSRFToken, token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: step 1: %w", domain.ErrSessionBootstrap, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	a.log.Info().Int("status", resp.StatusCode).Msg("Step 1 page status")
	return nil
}

// extractCSRFToken returns the content of <meta name="csrf-token"> in an HTML document.
func extractCSRFToken(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return "", nil
			}
			return "", z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "meta" {
				continue
			}
			var name, content string
			for _, attr := range tok.Attr {
				switch attr.Key {
				case "name":
					name = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if name == "csrf-token" {
				return content, nil
			}
		}
	}
}
