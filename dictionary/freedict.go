package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const freeDictBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// FreeDictClient validates words against the Free Dictionary API
// (dictionaryapi.dev). It needs no API key; an unknown word comes back as
// a 404, which is an ordinary invalid-word answer, not an outage.
type FreeDictClient struct {
	baseURL string
	client  *http.Client
}

func NewFreeDictClient() *FreeDictClient {
	return &FreeDictClient{
		baseURL: freeDictBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FreeDictClient) Name() string {
	return "freedict"
}

type freeDictEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Lookup implements the Lookup interface.
func (f *FreeDictClient) Lookup(ctx context.Context, word string) (*Entry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	reqURL := fmt.Sprintf("%s/%s", f.baseURL, url.PathEscape(word))

	body, err := fetchWithRetry(ctx, f.client, reqURL)
	if errors.Is(err, errNotFound) {
		return &Entry{Word: strings.ToUpper(word)}, nil
	}
	if err != nil {
		return nil, err
	}

	var results []freeDictEntry
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrLookupUnavailable, err)
	}

	entry := &Entry{Word: strings.ToUpper(word)}
	for _, r := range results {
		for _, m := range r.Meanings {
			// Abbreviation-only entries are not playable words.
			if m.PartOfSpeech == "abbreviation" {
				continue
			}
			entry.Valid = true
			if len(m.Definitions) > 0 && entry.Definition == "" {
				if m.PartOfSpeech != "" {
					entry.Definition = m.PartOfSpeech + ": " + m.Definitions[0].Definition
				} else {
					entry.Definition = m.Definitions[0].Definition
				}
			}
		}
	}
	return entry, nil
}
