package endpoints

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/api"
	"github.com/grimoire-tools/grimoire/internal/content"
	"github.com/grimoire-tools/grimoire/internal/pipeline"
	"github.com/grimoire-tools/grimoire/internal/statblock"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

// ParseRequest is the request body for the parse endpoints.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseEndpoint handles POST /api/v1/parse: full pipeline over a document.
type ParseEndpoint struct{}

func (e *ParseEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/parse", e.handler
}

func (e *ParseEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := pipeline.Process(r.Context(), req.Text, pipelineOptions(r))
	if err != nil {
		if errors.Is(err, pipeline.ErrNoContent) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (e *ParseEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document on the server",
		Long: `Send a text document to the running server for detection and parsing.
Reads from the given file, or stdin when no file is provided.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var res pipeline.Result
			if err := client.Post(cmd.Context(), "/api/v1/parse", ParseRequest{Text: text}, &res); err != nil {
				return err
			}
			return api.Output(res)
		},
	}
}

// StatblockEndpoint handles POST /api/v1/parse/statblock: a single block
// already known to be a monster statblock.
type StatblockEndpoint struct{}

func (e *StatblockEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/parse/statblock", e.handler
}

func (e *StatblockEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := statblock.Parse(req.Text)
	if err != nil {
		// ErrEmptyInput is the only failure Parse produces.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (e *StatblockEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "statblock [file]",
		Short: "Parse one monster statblock on the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var rec content.MonsterRecord
			if err := client.Post(cmd.Context(), "/api/v1/parse/statblock", ParseRequest{Text: text}, &rec); err != nil {
				return err
			}
			return api.Output(rec)
		},
	}
}

// pipelineOptions builds pipeline options from the active configuration.
func pipelineOptions(r *http.Request) pipeline.Options {
	var opts pipeline.Options
	if mgr := svcctx.ConfigFrom(r.Context()); mgr != nil {
		cfg := mgr.Get()
		opts.Detector.MinBlockChars = cfg.Parser.MinBlockChars
		opts.Detector.TitleLookahead = cfg.Parser.TitleLookahead
	}
	return opts
}

// readInput reads the command's input file, or stdin for no args / "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
