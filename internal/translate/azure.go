package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

const (
	azureEndpoint = "https://api.cognitive.microsofttranslator.com"
	azureVersion  = "3.0"
	translatePath = "/translate"
	languagesPath = "/languages"
	azureService  = "Azure translation API"
)

// Azure translates with the Azure AI Translator text API.
type Azure struct {
	key    string
	region string
	httpOptions
}

func NewAzure(key, region string, opts ...Option) *Azure {
	return &Azure{
		key:         key,
		region:      region,
		httpOptions: newHTTPOptions(azureEndpoint, opts),
	}
}

func (a *Azure) Name() string {
	return "azure"
}

type azureTextItem struct {
	Text string `json:"text"`
}

type azureDetected struct {
	Language string  `json:"language"`
	Score    float64 `json:"score"`
}

type azureTranslateItem struct {
	DetectedLanguage *azureDetected `json:"detectedLanguage"`
	Translations     []struct {
		To   string `json:"to"`
		Text string `json:"text"`
	} `json:"translations"`
}

type azureLanguages struct {
	Translation map[string]struct {
		Name       string `json:"name"`
		NativeName string `json:"nativeName"`
		Dir        string `json:"dir"`
	} `json:"translation"`
}

func (a *Azure) Translate(ctx context.Context, req Request) (*Result, error) {
	if a.key == "" {
		return nil, fmt.Errorf("Azure translation resource key not configured")
	}
	params := url.Values{}
	params.Set("api-version", azureVersion)
	params.Set("to", req.Target.String())
	if req.Source != lang.Und {
		params.Set("from", req.Source.String())
	}

	items := make([]azureTextItem, len(req.Sentences))
	for i, s := range req.Sentences {
		items[i] = azureTextItem{Text: s}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.endpoint+translatePath+"?"+params.Encode(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", a.key)
	httpReq.Header.Set("Ocp-Apim-Subscription-Region", a.region)
	httpReq.Header.Set("X-ClientTraceId", uuid.NewString())

	log.WithFields(log.Fields{"sentences": len(items), "to": req.Target}).Debug("calling Azure translate")

	var resp []azureTranslateItem
	if err := doJSON(a.httpClient, httpReq, azureService, &resp); err != nil {
		return nil, err
	}
	if err := checkCount(azureService, len(resp), len(req.Sentences)); err != nil {
		return nil, err
	}

	// Without a fixed source, keep the most confident detection.
	source, score := lang.EnGB, 0.0
	if req.Source != lang.Und {
		source, score = req.Source, 1.0
	}
	out := make([]string, len(resp))
	for i, item := range resp {
		if d := item.DetectedLanguage; d != nil && d.Score > score {
			if l, err := lang.Parse(d.Language); err == nil {
				source, score = l, d.Score
			} else {
				log.WithField("language", d.Language).Debug("ignoring unsupported detected language")
			}
		}
		if len(item.Translations) != 1 {
			return nil, fmt.Errorf("%s: %w: item %d has %d translations", azureService, ErrContract, i, len(item.Translations))
		}
		tr := item.Translations[0]
		if !strings.EqualFold(tr.To, req.Target.String()) {
			return nil, fmt.Errorf("%s: %w: item %d translated to %q, want %q", azureService, ErrContract, i, tr.To, req.Target)
		}
		out[i] = tr.Text
	}

	dir, err := a.direction(ctx, req.Target)
	if err != nil {
		return nil, err
	}
	return &Result{Source: source, Direction: dir, Sentences: out}, nil
}

// direction asks the languages endpoint how the target language is written.
func (a *Azure) direction(ctx context.Context, target lang.Language) (lang.Direction, error) {
	params := url.Values{}
	params.Set("api-version", azureVersion)
	params.Set("scope", "translation")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.endpoint+languagesPath+"?"+params.Encode(), nil)
	if err != nil {
		return lang.LeftToRight, err
	}

	var resp azureLanguages
	if err := doJSON(a.httpClient, httpReq, azureService+" "+languagesPath, &resp); err != nil {
		return lang.LeftToRight, err
	}
	for code, l := range resp.Translation {
		if strings.EqualFold(code, target.String()) {
			return lang.ParseDirection(l.Dir)
		}
	}
	return lang.LeftToRight, fmt.Errorf("target language %s not returned by %s endpoint", target, languagesPath)
}
