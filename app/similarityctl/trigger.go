package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Guyuepp/creatorhub/internal/rest/middleware"
)

const triggerPath = "/api/update-similarity"

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Ask a running server to rebuild the similarity relation",
	Long: `Calls the admin endpoint with the shared secret header and waits for the rebuild to finish.

Examples:
  similarityctl trigger
  similarityctl trigger --api https://api.example.com --timeout 30m`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		res, err := triggerRebuild(&http.Client{Timeout: timeout}, backendURL, updateSecret)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), res)
	},
}

func init() {
	triggerCmd.Flags().Duration("timeout", time.Hour, "How long to wait for the server")
}

type rebuildResponse struct {
	Status     string `json:"status"`
	Users      int    `json:"users"`
	Pairs      int    `json:"pairs"`
	DurationMS int64  `json:"duration_ms"`
}

var errRebuildBusy = errors.New("a rebuild is already running")

func triggerRebuild(client *http.Client, baseURL, secret string) (rebuildResponse, error) {
	var res rebuildResponse
	if secret == "" {
		return res, errors.New("UPDATE_SECRET is not set")
	}

	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(baseURL, "/")+triggerPath, nil)
	if err != nil {
		return res, err
	}
	req.Header.Set(middleware.UpdateSecretHeader, secret)

	resp, err := client.Do(req)
	if err != nil {
		return res, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return res, errRebuildBusy
	case http.StatusForbidden:
		return res, errors.New("server rejected the update secret")
	default:
		return res, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("failed to parse response: %w", err)
	}
	return res, nil
}

func printResult(w io.Writer, res rebuildResponse) error {
	if output == "json" {
		return json.NewEncoder(w).Encode(res)
	}
	_, err := fmt.Fprintf(w, "similarity rebuilt: %d users, %d pairs in %s\n",
		res.Users, res.Pairs, time.Duration(res.DurationMS)*time.Millisecond)
	return err
}
