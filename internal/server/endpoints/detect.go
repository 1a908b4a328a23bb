package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/api"
	"github.com/grimoire-tools/grimoire/internal/content"
	"github.com/grimoire-tools/grimoire/internal/detector"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

// DetectResponse is the response of the detect endpoint.
type DetectResponse struct {
	Blocks  []content.Block `json:"blocks"`
	Skipped int             `json:"skipped"`
}

// DetectEndpoint handles POST /api/v1/detect: block splitting and
// classification without structural parsing. Useful for previewing how a
// document will segment before committing to a full parse.
type DetectEndpoint struct{}

func (e *DetectEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/detect", e.handler
}

func (e *DetectEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "no content to parse")
		return
	}

	var opts detector.Options
	if mgr := svcctx.ConfigFrom(r.Context()); mgr != nil {
		cfg := mgr.Get()
		opts.MinBlockChars = cfg.Parser.MinBlockChars
		opts.TitleLookahead = cfg.Parser.TitleLookahead
	}

	res := detector.Detect(req.Text, opts)
	writeJSON(w, http.StatusOK, DetectResponse{Blocks: res.Blocks, Skipped: res.Skipped})
}

func (e *DetectEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Split and classify a document without parsing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var res DetectResponse
			if err := client.Post(cmd.Context(), "/api/v1/detect", ParseRequest{Text: text}, &res); err != nil {
				return err
			}
			return api.Output(res)
		},
	}
}
