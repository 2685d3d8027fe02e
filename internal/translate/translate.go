// Package translate sends batches of sentences to a machine translation
// service.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

// Request is one batch of sentences. Source may be lang.Und to have the
// service detect it.
type Request struct {
	Sentences []string
	Source    lang.Language
	Target    lang.Language
}

// Result holds the translations in request order, along with the source
// language and the direction the target language is written in.
type Result struct {
	Source    lang.Language
	Direction lang.Direction
	Sentences []string
}

// Translator is implemented by each translation engine.
type Translator interface {
	Translate(ctx context.Context, req Request) (*Result, error)
	Name() string
}

// ErrContract is returned when a service answers with something other
// than one translation per sentence in the requested language.
var ErrContract = errors.New("translation response does not match request")

// StatusError is a non-success HTTP response from a translation service.
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned error response code %d: %s", e.Service, e.Code, e.Body)
}

// Option configures the HTTP based engines.
type Option func(*httpOptions)

type httpOptions struct {
	endpoint   string
	httpClient *http.Client
}

// WithEndpoint overrides the service base URL.
func WithEndpoint(endpoint string) Option {
	return func(o *httpOptions) { o.endpoint = strings.TrimRight(endpoint, "/") }
}

// WithHTTPClient replaces the default client, which times out after a minute.
func WithHTTPClient(c *http.Client) Option {
	return func(o *httpOptions) { o.httpClient = c }
}

func newHTTPOptions(endpoint string, opts []Option) httpOptions {
	o := httpOptions{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 1 * time.Minute},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// doJSON sends req and decodes a 200 response body into v.
func doJSON(c *http.Client, req *http.Request, service string, v any) error {
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s response: %w", service, err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Service: service, Code: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: parse response: %w", service, err)
	}
	return nil
}

func checkCount(service string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: %w: %d translations for %d sentences", service, ErrContract, got, want)
	}
	return nil
}
