package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/solenne/whittle/internal/domain"
	"github.com/solenne/whittle/internal/ports"
)

const (
	newGamePath = "/game/new"
	excludePath = "/game/exclude"

	maxResponseBytes = 1 << 20
)

// Client issues the two game operations over HTTP. Failures are normalized
// into the domain taxonomy: a request that never reached the server is a
// transport failure, a non-2xx status is a server failure (body unparsed),
// and an unparseable success body is a protocol failure. No retries.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.GameServerClient = (*Client)(nil)

type wireSpecies struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
	Form     *string `json:"form"`
	State    string  `json:"state"`
}

type wireSession struct {
	ID                 string        `json:"id"`
	Species            []wireSpecies `json:"species"`
	GameState          string        `json:"gameState"`
	Hint               string        `json:"hint"`
	Explanation        string        `json:"explanation"`
	ExpectedExclusions int           `json:"expectedExclusions"`
	ValidGuess         bool          `json:"validGuess"`
}

type excludeRequest struct {
	GameID    string  `json:"gameId"`
	SpeciesID int     `json:"speciesId"`
	Form      *string `json:"form"`
}

func (c *Client) StartSession(ctx context.Context) (domain.SessionState, error) {
	return c.post(ctx, newGamePath, nil)
}

func (c *Client) SubmitExclusion(ctx context.Context, sessionID string, key domain.CandidateKey) (domain.SessionState, error) {
	var form *string
	if key.Form != "" {
		value := key.Form
		form = &value
	}

	body, err := json.Marshal(excludeRequest{
		GameID:    sessionID,
		SpeciesID: key.ID,
		Form:      form,
	})
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("encode exclusion request: %w", err)
	}

	return c.post(ctx, excludePath, body)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (domain.SessionState, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return domain.SessionState{}, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, reader)
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("create game request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.SessionState{}, domain.TransportFailure(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SessionState{}, domain.ServerFailure(resp.StatusCode)
	}

	var payload wireSession
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.SessionState{}, domain.ProtocolFailure(fmt.Errorf("decode session response: %w", err))
	}

	state, err := toSessionState(payload)
	if err != nil {
		return domain.SessionState{}, domain.ProtocolFailure(err)
	}

	return state, nil
}

func toSessionState(payload wireSession) (domain.SessionState, error) {
	if payload.ID == "" {
		return domain.SessionState{}, errors.New("session response missing id")
	}

	phase, err := toPhase(payload.GameState)
	if err != nil {
		return domain.SessionState{}, err
	}

	roster := make([]domain.Candidate, 0, len(payload.Species))
	for _, species := range payload.Species {
		status, err := toCandidateStatus(species.State)
		if err != nil {
			return domain.SessionState{}, err
		}

		roster = append(roster, domain.Candidate{
			ID:          species.ID,
			Form:        stringValue(species.Form),
			DisplayName: species.Name,
			ImageRef:    stringValue(species.ImageURL),
			Status:      status,
		})
	}

	return domain.SessionState{
		SessionID:         payload.ID,
		Roster:            roster,
		Phase:             phase,
		Hint:              payload.Hint,
		Explanation:       payload.Explanation,
		ExpectedRemaining: payload.ExpectedExclusions,
		LastGuessValid:    payload.ValidGuess,
	}, nil
}

func toPhase(gameState string) (domain.Phase, error) {
	switch gameState {
	case "IN_PROGRESS":
		return domain.PhaseInProgress, nil
	case "COMPLETED":
		return domain.PhaseWon, nil
	case "FAILED":
		return domain.PhaseLost, nil
	default:
		return "", fmt.Errorf("unknown game state %q", gameState)
	}
}

func toCandidateStatus(state string) (domain.CandidateStatus, error) {
	switch state {
	case "AVAILABLE":
		return domain.CandidateAvailable, nil
	case "EXCLUDED":
		return domain.CandidateExcluded, nil
	default:
		return "", fmt.Errorf("unknown species state %q", state)
	}
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
