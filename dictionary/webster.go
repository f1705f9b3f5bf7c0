package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

// Dictionary editions served by the Merriam-Webster API.
const (
	WebsterCollegiate = "collegiate"
	WebsterLearners   = "learners"
)

const websterBaseURL = "https://www.dictionaryapi.com/api/v3/references"

// WebsterClient validates words against the Merriam-Webster dictionary API.
// Entries whose functional label marks them as abbreviation-only do not
// count as playable words.
type WebsterClient struct {
	apiKey  string
	edition string
	baseURL string
	client  *http.Client
}

// NewWebsterClient creates a client for the given edition ("collegiate" or
// "learners"). An empty edition means collegiate.
func NewWebsterClient(apiKey, edition string) *WebsterClient {
	if edition == "" {
		edition = WebsterCollegiate
	}
	return &WebsterClient{
		apiKey:  apiKey,
		edition: edition,
		baseURL: websterBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WebsterClient) Name() string {
	return "merriam-webster-" + w.edition
}

// websterEntry is the slice of fields we care about from a dictionary
// entry. The API returns a bare array of suggestion strings instead when
// the word is unknown.
type websterEntry struct {
	Meta struct {
		ID string `json:"id"`
	} `json:"meta"`
	FunctionalLabel string   `json:"fl"`
	ShortDef        []string `json:"shortdef"`
}

// Lookup implements the Lookup interface.
func (w *WebsterClient) Lookup(ctx context.Context, word string) (*Entry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	reqURL := fmt.Sprintf("%s/%s/json/%s?key=%s",
		w.baseURL, w.edition, url.PathEscape(word), url.QueryEscape(w.apiKey))

	body, err := fetchWithRetry(ctx, w.client, reqURL)
	if errors.Is(err, errNotFound) {
		return &Entry{Word: strings.ToUpper(word)}, nil
	}
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrLookupUnavailable, err)
	}

	entry := &Entry{Word: strings.ToUpper(word)}
	for _, msg := range raw {
		var e websterEntry
		if err := json.Unmarshal(msg, &e); err != nil {
			// A plain string means the API is suggesting alternatives;
			// the word itself is not in the dictionary.
			continue
		}
		if e.Meta.ID == "" || e.FunctionalLabel == "abbreviation" {
			continue
		}
		entry.Valid = true
		if entry.Definition == "" && len(e.ShortDef) > 0 {
			entry.Definition = e.ShortDef[0]
		}
	}
	return entry, nil
}

// fetchWithRetry GETs a URL, retrying transient failures a few times with
// backoff. Anything that still fails is a lookup-unavailable condition.
func fetchWithRetry(ctx context.Context, client *http.Client, reqURL string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				return retry.Unrecoverable(errNotFound)
			}
			if resp.StatusCode != http.StatusOK {
				err := fmt.Errorf("status %d", resp.StatusCode)
				if resp.StatusCode >= 400 && resp.StatusCode < 500 &&
					resp.StatusCode != http.StatusTooManyRequests {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().Uint("attempt", n).Err(err).Msg("retrying dictionary lookup")
		}),
	)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
	}
	return body, nil
}

// errNotFound marks a 404 from a backend. For some providers that simply
// means the word is not in the dictionary.
var errNotFound = errors.New("word not found")
