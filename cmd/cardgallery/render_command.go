package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cardgallery/internal/config"
	"cardgallery/internal/gallery"
	"cardgallery/internal/logging"
	"cardgallery/internal/services"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var workers int
	var record bool
	var defaultExtension string
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "render [token...]",
		Short: "Encode gallery tokens as {{Card gallery}} parameters",
		Long: `Render parses "filename | caption" tokens and prints one encoded
{{Card gallery}} parameter per token, in input order.

Tokens come from the arguments, from --input, or one per line on stdin.
Blank lines and <gallery> tags are skipped.`,
		Example: `  cardgallery render "12345-LOB-EN-R-UE.jpg | [[LOB-EN001]] ([[Common]])<br>[[Legend of Blue Eyes White Dragon]]"
  cardgallery render --input gallery.txt --record
  xclip -o | cardgallery render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			tokens, err := collectTokens(cmd, args, inputPath)
			if err != nil {
				return err
			}
			if len(tokens) == 0 {
				return services.Wrap(services.ErrValidation, "render", "read tokens", "no tokens supplied", nil)
			}

			kind, err := resolveKind(cfg, kindFlag)
			if err != nil {
				return err
			}
			opts := gallery.BatchOptions{
				Kind:    kind,
				Workers: cfg.Render.Workers,
				Render:  gallery.RenderOptions{DefaultExtension: cfg.Render.DefaultExtension},
				Logger:  logger,
			}
			if cmd.Flags().Changed("workers") {
				if workers <= 0 {
					return services.Wrap(services.ErrValidation, "render", "parse flags", "--workers must be positive", nil)
				}
				opts.Workers = workers
			}
			if ext := strings.TrimPrefix(strings.TrimSpace(defaultExtension), "."); ext != "" {
				opts.Render.DefaultExtension = ext
			}

			batchID := uuid.NewString()
			runCtx := services.WithRequestID(services.WithCommand(cmd.Context(), "render"), batchID)
			log := logging.WithContext(runCtx, logging.NewComponentLogger(logger, "cli"))

			results, err := gallery.RenderAll(runCtx, tokens, opts)
			if err != nil {
				return services.Wrap(services.ErrTransient, "render", "render batch", "", err)
			}

			out := cmd.OutOrStdout()
			var firstErr error
			failed := 0
			for _, result := range results {
				if result.Err != nil {
					failed++
					if firstErr == nil {
						firstErr = result.Err
					}
					logging.WarnWithContext(log, "token not rendered", "entry_parse_failed",
						logging.Int(logging.FieldEntryIndex, result.Index),
						logging.String("token", result.Token),
						logging.Error(result.Err),
						logging.String(logging.FieldErrorHint, "filenames must look like name-SET-REGION-RARITY-EDITION.ext"),
						logging.String(logging.FieldImpact, "entry omitted from output"),
					)
					continue
				}
				fmt.Fprintln(out, result.Output)
			}

			if record || cfg.Catalog.Enabled {
				store, err := ctx.openCatalog("render")
				if err != nil {
					return err
				}
				defer store.Close()
				if _, err := store.SaveBatch(runCtx, batchID, kind, results); err != nil {
					return services.Wrap(services.ErrTransient, "render", "record batch", "", err)
				}
				log.Info("batch recorded",
					logging.String("batch_id", batchID),
					logging.String("catalog", store.Path()),
				)
			}

			log.Info("batch rendered",
				logging.Int("entries", len(results)),
				logging.Int("failed", failed),
			)

			if failed > 0 {
				message := fmt.Sprintf("%d of %s could not be parsed", failed, formatCount(len(results), "token", "tokens"))
				return services.Wrap(services.ErrValidation, "render", "parse tokens", message, firstErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read tokens from a file, one per line (\"-\" for stdin)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Entries rendered concurrently (defaults to render.workers)")
	cmd.Flags().BoolVar(&record, "record", false, "Record the batch in the catalog")
	cmd.Flags().StringVar(&defaultExtension, "default-extension", "", "Extension left implicit in output (defaults to render.default_extension)")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "Gallery kind: card or set (defaults to render.kind)")
	return cmd
}

func resolveKind(cfg *config.Config, flagValue string) (gallery.Kind, error) {
	value := cfg.Render.Kind
	if strings.TrimSpace(flagValue) != "" {
		value = flagValue
	}
	kind, err := gallery.ParseKind(value)
	if err != nil {
		return kind, services.Wrap(services.ErrValidation, "", "resolve kind", "", err)
	}
	return kind, nil
}

// collectTokens returns tokens from args, the --input file, or stdin, in
// that order of preference.
func collectTokens(cmd *cobra.Command, args []string, inputPath string) ([]string, error) {
	inputPath = strings.TrimSpace(inputPath)
	if len(args) > 0 {
		if inputPath != "" {
			return nil, services.Wrap(services.ErrValidation, "render", "read tokens", "pass tokens as arguments or --input, not both", nil)
		}
		return args, nil
	}

	switch inputPath {
	case "":
		stdin := cmd.InOrStdin()
		if isTerminal(stdin) {
			return nil, services.Wrap(services.ErrValidation, "render", "read tokens", "no tokens supplied; pass arguments, --input, or pipe tokens on stdin", nil)
		}
		return readTokens(stdin)
	case "-":
		return readTokens(cmd.InOrStdin())
	default:
		file, err := os.Open(inputPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, services.Wrap(services.ErrNotFound, "render", "open input", inputPath, err)
			}
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		return readTokens(file)
	}
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isGalleryTag(line) {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return tokens, nil
}

func isGalleryTag(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "<gallery") || strings.HasPrefix(lower, "</gallery")
}
