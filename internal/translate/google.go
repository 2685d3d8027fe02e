package translate

import (
	"context"
	"fmt"

	"github.com/smilingpoplar/translate/translator/google"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

type translateFunc func(texts []string, toLang string) ([]string, error)

// Google translates through the free Google Translate web endpoint. It does
// not report a detected source language.
type Google struct {
	newClient func() (translateFunc, error)
}

func NewGoogle(proxy string) *Google {
	return &Google{newClient: func() (translateFunc, error) {
		t, err := google.New(google.WithProxy(proxy))
		if err != nil {
			return nil, err
		}
		return func(texts []string, toLang string) ([]string, error) {
			return t.Translate(texts, toLang)
		}, nil
	}}
}

func (g *Google) Name() string {
	return "google"
}

func (g *Google) Translate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	translate, err := g.newClient()
	if err != nil {
		return nil, fmt.Errorf("google translator: %w", err)
	}
	trans, err := translate(req.Sentences, googleCode(req.Target))
	if err != nil {
		return nil, fmt.Errorf("google translate: %w", err)
	}
	if err := checkCount("google translate", len(trans), len(req.Sentences)); err != nil {
		return nil, err
	}
	return &Result{
		Source:    req.Source,
		Direction: req.Target.Direction(),
		Sentences: trans,
	}, nil
}

// googleCode maps to Google's codes, which have no regional English.
func googleCode(l lang.Language) string {
	base, _ := l.Tag().Base()
	return base.String()
}
