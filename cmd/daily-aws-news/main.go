package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mats16/daily-aws-news/internal/app"
	"github.com/mats16/daily-aws-news/internal/config"
	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/logging"
	"github.com/mats16/daily-aws-news/internal/usecase"
)

var version = "dev"

var (
	flagLang   string
	flagAt     string
	flagDraft  bool
	flagDryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "daily-aws-news",
	Short: "Generate the Daily AWS News digest",
	Long: `daily-aws-news collects the day's AWS announcements, videos, blog posts,
and project releases, renders one digest per language, and publishes the
result for the static site build.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daily-aws-news %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagLang, "lang", "all", "digest edition: ja, en, or all")
	rootCmd.Flags().StringVar(&flagAt, "at", "", "execution time in RFC3339 (defaults to now)")
	rootCmd.Flags().BoolVar(&flagDraft, "draft", false, "mark the digest as a draft")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "render to stdout without storing or notifying")
	rootCmd.AddCommand(versionCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	execTime := time.Now()
	if flagAt != "" {
		t, err := time.Parse(time.RFC3339, flagAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}
		execTime = t
	}

	languages, err := parseLanguages(flagLang)
	if err != nil {
		return err
	}

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	ctx := cmd.Context()
	application, err := app.New(ctx, cfg, logger, app.Options{DryRun: flagDryRun})
	if err != nil {
		return err
	}

	// Editions are independent executions; one failing must not keep the
	// other from publishing.
	results := make([]usecase.Result, len(languages))
	errs := make([]error, len(languages))
	var wg sync.WaitGroup
	for i, lang := range languages {
		wg.Add(1)
		go func(i int, lang domain.Language) {
			defer wg.Done()
			results[i], errs[i] = application.Run(ctx, usecase.Request{
				ExecutionTime: execTime,
				Language:      lang,
				Draft:         flagDraft,
				RunID:         uuid.NewString(),
			})
		}(i, lang)
	}
	wg.Wait()

	var failed []string
	for i, lang := range languages {
		if errs[i] != nil {
			logger.Error("digest failed", "lang", lang, "error", errs[i])
			failed = append(failed, string(lang))
			continue
		}
		if flagDryRun {
			fmt.Printf("%s\n", results[i].Content)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("digest failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

func parseLanguages(value string) ([]domain.Language, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all", "":
		return []domain.Language{domain.Japanese, domain.English}, nil
	case string(domain.Japanese):
		return []domain.Language{domain.Japanese}, nil
	case string(domain.English):
		return []domain.Language{domain.English}, nil
	}
	return nil, fmt.Errorf("unknown language %q (valid: ja, en, all)", value)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
