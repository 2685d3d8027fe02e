package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smilingpoplar/vtt-translate/internal/app"
	"github.com/smilingpoplar/vtt-translate/internal/config"
	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

var (
	input      string
	output     string
	configPath string
	noProgress bool

	// overrides for config values, applied only when the flag is set
	fromlang         string
	tolang           string
	engine           string
	biling           bool
	dropUnterminated bool
	proxy            string
	azureKey         string
	azureRegion      string
	deeplKey         string
	logLevel         string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Short:                 "translate subtitle file, keeping each sentence spread over its original cues",
		Use:                   "vtt-translate -i input.vtt [-o output.vtt] [-t fa]",
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return translate(cmd)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "required, input subtitle file, .vtt, .srt, .ssa/.ass, .stl or .ttml")
	cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output subtitle file (default: input name with the target language)")
	cmd.Flags().StringVarP(&fromlang, "fromlang", "s", "", "source language (default: auto-detect)")
	cmd.Flags().StringVarP(&tolang, "tolang", "t", "fa", fmt.Sprintf("target language, one of %v", lang.All()))
	cmd.Flags().StringVarP(&engine, "engine", "e", "azure", "translation engine: azure, google or deepl")
	cmd.Flags().BoolVarP(&biling, "biling", "b", false, "bilingual subtitle")
	cmd.Flags().BoolVar(&dropUnterminated, "drop-unterminated", false, "drop text after the last fullstop instead of translating it")
	cmd.Flags().StringVarP(&proxy, "proxy", "p", "", `http or socks5 proxy for the google engine,
eg. http://127.0.0.1:7890 or socks5://127.0.0.1:7890`)
	cmd.Flags().StringVar(&azureKey, "azure-key", "", "Azure Translator resource key (env "+config.EnvAzureKey+")")
	cmd.Flags().StringVar(&azureRegion, "azure-region", "", "Azure Translator resource region (env "+config.EnvAzureRegion+")")
	cmd.Flags().StringVar(&deeplKey, "deepl-key", "", "DeepL API key (env "+config.EnvDeepLKey+")")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: <user config dir>/vtt-translate/config.yaml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("fromlang", &cfg.SourceLanguage, fromlang)
	override("tolang", &cfg.TargetLanguage, tolang)
	override("engine", &cfg.Engine, engine)
	override("proxy", &cfg.Google.Proxy, proxy)
	override("azure-key", &cfg.Azure.Key, azureKey)
	override("azure-region", &cfg.Azure.Region, azureRegion)
	override("deepl-key", &cfg.DeepL.Key, deeplKey)
	override("log-level", &cfg.LogLevel, logLevel)
	if flags.Changed("biling") {
		cfg.Bilingual = biling
	}
	if flags.Changed("drop-unterminated") {
		cfg.DropUnterminated = dropUnterminated
	}
	return cfg, cfg.Validate()
}

func translate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	source, target, err := cfg.Languages()
	if err != nil {
		return err
	}
	tr, err := app.NewTranslator(cfg)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(app.Stages),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(!noProgress),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	started := false
	written, err := app.Run(cmd.Context(), app.Options{
		Input:            input,
		Output:           output,
		Source:           source,
		Target:           target,
		Bilingual:        cfg.Bilingual,
		DropUnterminated: cfg.DropUnterminated,
		Translator:       tr,
		Progress: func(stage string) {
			if started {
				bar.Add(1)
			}
			started = true
			bar.Describe(stage)
		},
	})
	if err != nil {
		return err
	}
	bar.Finish()
	log.WithField("file", written).Info("done")
	return nil
}
