package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

const (
	deeplAPIURL  = "https://api-free.deepl.com/v2/translate"
	deeplService = "DeepL API"

	// DeepL accepts at most 50 texts per request.
	batchSize = 50
)

// DeepL translates with the DeepL API.
type DeepL struct {
	apiKey string
	httpOptions
}

func NewDeepL(apiKey string, opts ...Option) *DeepL {
	return &DeepL{
		apiKey:      apiKey,
		httpOptions: newHTTPOptions(deeplAPIURL, opts),
	}
}

func (d *DeepL) Name() string {
	return "deepl"
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

func (d *DeepL) Translate(ctx context.Context, req Request) (*Result, error) {
	if d.apiKey == "" {
		return nil, fmt.Errorf("DeepL API key not configured")
	}

	res := &Result{
		Source:    req.Source,
		Direction: req.Target.Direction(),
		Sentences: make([]string, 0, len(req.Sentences)),
	}
	totalBatches := (len(req.Sentences) + batchSize - 1) / batchSize
	for i := 0; i < len(req.Sentences); i += batchSize {
		end := min(i+batchSize, len(req.Sentences))
		batchNum := i/batchSize + 1
		log.WithFields(log.Fields{"batch": batchNum, "of": totalBatches}).Debug("calling DeepL translate")

		resp, err := d.translateBatch(ctx, req.Sentences[i:end], req)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", batchNum, err)
		}
		if err := checkCount(deeplService, len(resp.Translations), end-i); err != nil {
			return nil, err
		}
		for _, t := range resp.Translations {
			if res.Source == lang.Und && t.DetectedSourceLanguage != "" {
				if l, err := lang.Parse(t.DetectedSourceLanguage); err == nil {
					res.Source = l
				}
			}
			res.Sentences = append(res.Sentences, t.Text)
		}
	}
	return res, nil
}

func (d *DeepL) translateBatch(ctx context.Context, texts []string, req Request) (*deeplResponse, error) {
	form := url.Values{}
	for _, t := range texts {
		form.Add("text", t)
	}
	form.Set("target_lang", deeplTargetCode(req.Target))
	if req.Source != lang.Und {
		form.Set("source_lang", deeplSourceCode(req.Source))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)

	var resp deeplResponse
	if err := doJSON(d.httpClient, httpReq, deeplService, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// deeplTargetCode converts to DeepL's upper case codes. English targets
// must name a variant.
func deeplTargetCode(l lang.Language) string {
	if l == lang.En {
		return "EN-US"
	}
	return strings.ToUpper(l.String())
}

// deeplSourceCode drops the region, which DeepL rejects for sources.
func deeplSourceCode(l lang.Language) string {
	base, _ := l.Tag().Base()
	return strings.ToUpper(base.String())
}
