// Package holidayapi talks to the public-holiday provider. The provider is
// treated as an opaque, idempotent source of holiday definitions per
// (country, year); regional filtering happens on its subdivision codes.
package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"staff-roster-backend/internal/config"
	apperrors "staff-roster-backend/internal/errors"
)

//go:generate mockgen -source=client.go -destination=../mocks/provider_mocks.go -package=mocks

// ProviderHoliday is one holiday definition returned by the provider
type ProviderHoliday struct {
	Date   time.Time
	Name   string
	Global bool
	// Regions holds the subdivision codes the holiday is limited to, empty
	// when it applies country-wide
	Regions []string
}

// Provider fetches public-holiday definitions for a country, year and
// optional region
type Provider interface {
	PublicHolidays(ctx context.Context, country string, year int, region *string) ([]ProviderHoliday, error)
}

// Client is the HTTP implementation of Provider against a Nager.Date style API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new holiday provider client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.HolidayAPIBaseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// apiHoliday mirrors the provider's wire format
type apiHoliday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Global    bool     `json:"global"`
	Counties  []string `json:"counties"`
	Types     []string `json:"types"`
}

// PublicHolidays fetches the public holidays of a country and year. When a
// region is given, only holidays limited to that region are returned; when
// nil, only country-wide holidays are returned. The split keeps national and
// regional imports disjoint so each identity owns its own rows.
func (c *Client) PublicHolidays(ctx context.Context, country string, year int, region *string) ([]ProviderHoliday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewProviderError("holiday provider", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperrors.NewProviderError("holiday provider",
			fmt.Sprintf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var raw []apiHoliday
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, apperrors.NewProviderError("holiday provider", "invalid JSON response: "+err.Error())
	}

	var holidays []ProviderHoliday
	for _, h := range raw {
		if !isPublicType(h.Types) {
			continue
		}
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			return nil, apperrors.NewProviderError("holiday provider", "invalid date "+h.Date)
		}
		name := h.LocalName
		if name == "" {
			name = h.Name
		}
		regions := subdivisions(country, h.Counties)
		if region == nil {
			if !h.Global && len(regions) > 0 {
				continue
			}
		} else {
			if !contains(regions, *region) {
				continue
			}
		}
		holidays = append(holidays, ProviderHoliday{
			Date:    date,
			Name:    name,
			Global:  h.Global,
			Regions: regions,
		})
	}
	return holidays, nil
}

// isPublicType keeps only public holidays; providers tag school or bank
// holidays separately. An absent type list counts as public.
func isPublicType(types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if strings.EqualFold(t, "Public") {
			return true
		}
	}
	return false
}

// subdivisions strips the country prefix from provider county codes
// ("DE-BW" -> "BW")
func subdivisions(country string, counties []string) []string {
	var regions []string
	for _, county := range counties {
		code := strings.TrimPrefix(county, country+"-")
		if code != "" {
			regions = append(regions, code)
		}
	}
	return regions
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
