package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/api"
	"github.com/grimoire-tools/grimoire/internal/config"
	"github.com/grimoire-tools/grimoire/internal/content"
	"github.com/grimoire-tools/grimoire/internal/detector"
	"github.com/grimoire-tools/grimoire/internal/export"
	"github.com/grimoire-tools/grimoire/internal/home"
	"github.com/grimoire-tools/grimoire/internal/pipeline"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

var (
	parseKind   string
	parseExport bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Detect and parse game content from a text file or stdin",
	Long: `Parse splits a document into content blocks, classifies each block,
and decodes recognized kinds into structured records. Runs entirely locally
(no server required). Reads from stdin when no file is given or the file
is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readLocalInput(args)
		if err != nil {
			return err
		}

		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := svcctx.WithServices(cmd.Context(), &svcctx.Services{
			Logger:    logger,
			ConfigMgr: mgr,
		})

		opts := pipeline.Options{
			Detector: detector.Options{
				MinBlockChars:  cfg.Parser.MinBlockChars,
				TitleLookahead: cfg.Parser.TitleLookahead,
			},
			ForceKind: content.Kind(parseKind),
		}

		res, err := pipeline.Process(ctx, text, opts)
		if err != nil {
			return err
		}

		if parseExport {
			dir := cfg.Export.Dir
			if dir == "" {
				h, err := home.New(homeDir)
				if err != nil {
					return err
				}
				if err := h.EnsureExists(); err != nil {
					return err
				}
				dir = h.ExportsPath()
			}
			path, err := export.NewWriter(dir).WriteResult(res, cfg.Export.Format)
			if err != nil {
				return err
			}
			logger.Info("records exported", "path", path)
		}

		return api.Output(res)
	},
}

func init() {
	parseCmd.Flags().StringVar(
		&parseKind, "kind", "",
		"skip classification and parse the whole input as this kind (monster, spell, item)",
	)
	parseCmd.Flags().BoolVar(
		&parseExport, "export", false,
		"write validated records to the exports directory",
	)
	rootCmd.AddCommand(parseCmd)
}

// readLocalInput reads the file named in args, or stdin when no file is
// given or the name is "-".
func readLocalInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
