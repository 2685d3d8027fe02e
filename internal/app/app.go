// Package app runs a subtitle file through sentence reconstruction,
// translation and reflow.
package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
	"github.com/smilingpoplar/vtt-translate/internal/reflow"
	"github.com/smilingpoplar/vtt-translate/internal/timeline"
	"github.com/smilingpoplar/vtt-translate/internal/translate"
)

// Stages are reported to Options.Progress in this order.
var Stages = []string{"parse", "reconstruct", "translate", "reflow", "write"}

type Options struct {
	Input  string
	Output string // derived from Input when empty

	Source lang.Language // lang.Und to detect
	Target lang.Language

	Bilingual        bool
	DropUnterminated bool

	Translator translate.Translator
	Progress   func(stage string)
}

// Run translates opts.Input and returns the path written. Nothing is
// written unless every stage succeeds.
func Run(ctx context.Context, opts Options) (string, error) {
	progress := func(stage string) {
		if opts.Progress != nil {
			opts.Progress(stage)
		}
	}

	progress("parse")
	log.WithField("file", opts.Input).Info("parsing subtitle file")
	f, err := timeline.ReadFile(opts.Input)
	if err != nil {
		return "", err
	}

	progress("reconstruct")
	sentences := reflow.Reconstruct(f.Document)
	if opts.DropUnterminated {
		var tail *reflow.Sentence
		if sentences, tail = reflow.DropUnterminated(sentences); tail != nil {
			log.WithField("text", tail.Text).Warn("dropping text after the last fullstop")
		}
	}
	log.WithFields(log.Fields{
		"blocks":    len(f.Document.Blocks),
		"sentences": len(sentences),
	}).Info("reconstructed sentences")

	progress("translate")
	res, err := translateSentences(ctx, opts, sentences)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"source":    res.Source,
		"target":    opts.Target,
		"direction": res.Direction,
	}).Info("translated sentences")

	progress("reflow")
	if err := reflow.SetTexts(sentences, res.Sentences); err != nil {
		return "", fmt.Errorf("reflow: %w", err)
	}
	doc, err := reflow.Reflow(f.Document, sentences)
	if err != nil {
		return "", fmt.Errorf("reflow: %w", err)
	}
	dir := res.Direction
	if opts.Bilingual {
		// only the translated lines take direction marks
		if doc, err = timeline.Bilingual(f.Document, timeline.ApplyDirection(doc, dir)); err != nil {
			return "", err
		}
		dir = lang.LeftToRight
	}

	progress("write")
	output := opts.Output
	if output == "" {
		output = DefaultOutputPath(opts.Input, res.Source, opts.Target)
	}
	log.WithField("file", output).Info("writing translated subtitle file")
	if err := f.WriteFile(output, doc, dir); err != nil {
		return "", err
	}
	return output, nil
}

func translateSentences(ctx context.Context, opts Options, sentences []reflow.Sentence) (*translate.Result, error) {
	if len(sentences) == 0 {
		log.Warn("no sentences found, skipping translation")
		return &translate.Result{Source: opts.Source, Direction: opts.Target.Direction()}, nil
	}

	log.WithField("engine", opts.Translator.Name()).Info("calling translation service")
	res, err := opts.Translator.Translate(ctx, translate.Request{
		Sentences: reflow.Texts(sentences),
		Source:    opts.Source,
		Target:    opts.Target,
	})
	if err != nil {
		return nil, fmt.Errorf("translate with %s: %w", opts.Translator.Name(), err)
	}
	if len(res.Sentences) != len(sentences) {
		return nil, fmt.Errorf("translate with %s: %w: %d translations for %d sentences",
			opts.Translator.Name(), translate.ErrContract, len(res.Sentences), len(sentences))
	}
	return res, nil
}
