package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/api"
	"github.com/grimoire-tools/grimoire/internal/config"
	"github.com/grimoire-tools/grimoire/internal/detector"
	"github.com/grimoire-tools/grimoire/internal/export"
	"github.com/grimoire-tools/grimoire/internal/home"
	"github.com/grimoire-tools/grimoire/internal/ingest"
	"github.com/grimoire-tools/grimoire/internal/pipeline"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

var (
	ingestTitle string
	ingestParse bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <pdf> [pdf...]",
	Short: "Extract text from source PDFs into the grimoire home",
	Long: `Ingest extracts page text from one or more PDF files (sorted by
numeric suffix, e.g. bestiary-1.pdf, bestiary-2.pdf), joins the pages into
a single document, and stores it under the home sources directory.

With --parse, the extracted text is immediately run through detection and
parsing, and the records are exported.

Requires pdftotext (poppler-utils) on PATH.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := svcctx.WithServices(cmd.Context(), &svcctx.Services{
			Logger: logger,
			Home:   h,
		})

		res, err := ingest.Ingest(ctx, h, ingest.Request{
			PDFPaths: args,
			Title:    ingestTitle,
		})
		if err != nil {
			return err
		}

		if !ingestParse {
			return api.Output(res)
		}

		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		data, err := os.ReadFile(res.TextPath)
		if err != nil {
			return err
		}

		parsed, err := pipeline.Process(ctx, string(data), pipeline.Options{
			Detector: detector.Options{
				MinBlockChars:  cfg.Parser.MinBlockChars,
				TitleLookahead: cfg.Parser.TitleLookahead,
			},
		})
		if err != nil {
			return err
		}

		dir := cfg.Export.Dir
		if dir == "" {
			dir = h.ExportsPath()
		}
		path, err := export.NewWriter(dir).WriteResult(parsed, cfg.Export.Format)
		if err != nil {
			return err
		}
		logger.Info("records exported", "path", path)

		return api.Output(parsed)
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "document title (derived from filename if empty)")
	ingestCmd.Flags().BoolVar(&ingestParse, "parse", false, "parse and export the extracted text immediately")
	rootCmd.AddCommand(ingestCmd)
}
