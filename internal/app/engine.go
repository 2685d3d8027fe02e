package app

import (
	"fmt"
	"net/http"

	"github.com/smilingpoplar/vtt-translate/internal/config"
	"github.com/smilingpoplar/vtt-translate/internal/translate"
)

// NewTranslator builds the engine selected in c.
func NewTranslator(c *config.Config) (translate.Translator, error) {
	httpOpts := func(endpoint string) []translate.Option {
		opts := []translate.Option{translate.WithHTTPClient(&http.Client{Timeout: c.Timeout})}
		if endpoint != "" {
			opts = append(opts, translate.WithEndpoint(endpoint))
		}
		return opts
	}
	switch c.Engine {
	case "azure":
		return translate.NewAzure(c.Azure.Key, c.Azure.Region, httpOpts(c.Azure.Endpoint)...), nil
	case "deepl":
		return translate.NewDeepL(c.DeepL.Key, httpOpts(c.DeepL.Endpoint)...), nil
	case "google":
		return translate.NewGoogle(c.Google.Proxy), nil
	}
	return nil, fmt.Errorf("unknown engine %q", c.Engine)
}
