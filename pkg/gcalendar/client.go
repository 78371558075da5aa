package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

var _ ICalendar = (*Client)(nil)

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file (Service Account or OAuth Desktop App).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw
// credentials JSON. Service Account credentials are tried first; OAuth
// Desktop App credentials require a previously generated token.json
// (see scripts/gcal-auth).
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	if jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClientFromTokenSource(ctx, jwtConfig.TokenSource(ctx))
	}

	tokenSource, err := desktopTokenSource(ctx, credentialsJSON)
	if err != nil {
		return nil, err
	}
	return newClientFromTokenSource(ctx, tokenSource)
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP
// client. Used by tests to point the service at a fake provider.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func newClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// desktopTokenSource builds a token source for OAuth Desktop App
// credentials from the token.json produced by the one-shot auth script.
func desktopTokenSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	var creds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, err := os.ReadFile("token.json")
	if err != nil {
		return nil, fmt.Errorf("credentials are OAuth Desktop type but token.json is missing: run scripts/gcal-auth first")
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", err)
	}

	return oauthConfig.TokenSource(ctx, &tok), nil
}

// CreateEvent inserts an event. Start and end are sent zone-naive with an
// explicit IANA TimeZone, so the provider interprets them in the service's
// configured zone.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(LocalDateTimeFormat),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(LocalDateTimeFormat),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(defaultCalendar(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns the single events in [TimeMin, TimeMax], ordered by
// start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	call := c.service.Events.List(defaultCalendar(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults)

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
		})
	}
	return events, nil
}

// DeleteEvent removes an event by ID.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(defaultCalendar(calendarID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func defaultCalendar(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}
