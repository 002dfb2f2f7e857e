package suggestions

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"uae-chat/internal/common"
)

//go:embed data/question_answer.json
var defaultCorpus []byte

// Loader reads a corpus from a URL, a file or the embedded default
type Loader struct {
	httpClient *http.Client
	userAgent  string
}

// NewLoader creates a loader whose HTTP fetches are bounded by timeout
func NewLoader(timeout time.Duration, userAgent string) *Loader {
	return &Loader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Load reads the corpus from source. An http(s) URL is fetched with a single
// GET, anything else non-empty is read as a file path, and an empty source
// yields the embedded corpus.
func (l *Loader) Load(ctx context.Context, source string) (Corpus, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case source == "":
		data = defaultCorpus
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		data, err = l.fetch(ctx, source)
	default:
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("failed to read corpus file: %w", err)
		}
	}
	if err != nil {
		return Corpus{}, err
	}

	return Parse(data)
}

// LoadOrEmpty behaves like Load but logs failures and returns an empty corpus.
func (l *Loader) LoadOrEmpty(ctx context.Context, source string, logger *log.Logger) Corpus {
	corpus, err := l.Load(ctx, source)
	if err != nil {
		common.OrDiscard(logger).Printf("error loading suggestions: %v", err)
		return Corpus{}
	}
	return corpus
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("corpus request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("corpus server returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus body: %w", err)
	}
	return data, nil
}

// Parse decodes a corpus document
func Parse(data []byte) (Corpus, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return Corpus{}, fmt.Errorf("failed to parse corpus: %w", err)
	}
	return NewCorpus(doc.Suggestions), nil
}
