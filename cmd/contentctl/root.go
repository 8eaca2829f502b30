package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/goflux-content-engine/internal/a2a"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
	"github.com/spf13/cobra"
)

var (
	baseURL    string
	timeout    time.Duration
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "contentctl",
	Short: "Command-line client for the goFlux content engine",
	Long: `contentctl talks to a running content engine server.

Typical session:
  contentctl select --theme "Antecipação de fretes" --products Club,naConta --channels email
  contentctl generate
  contentctl revise "Use a more formal tone"
  contentctl smoke`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the content engine")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Minute, "HTTP timeout per request")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON instead of formatted output")
}

func newClient() *Client {
	return NewClient(baseURL, timeout)
}

// generationReply mirrors the server's generation response.
type generationReply struct {
	Success bool                     `json:"success"`
	Result  *models.GenerationResult `json:"result"`
	Error   string                   `json:"error"`
	Kind    string                   `json:"kind"`
	Raw     string                   `json:"raw"`
}

// runGeneration posts to a generation endpoint and prints the outcome.
// Failures the server reports are returned as errors.
func runGeneration(ctx context.Context, path string, body any) error {
	status, data, err := newClient().Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(data)
	}

	var reply generationReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return fmt.Errorf("invalid JSON response (status %d): %w", status, err)
	}
	if !reply.Success {
		if reply.Raw != "" && !jsonOutput {
			fmt.Printf("%sRaw model reply:%s\n%s\n", colorYellow, colorReset, reply.Raw)
		}
		return fmt.Errorf("%s (%s)", reply.Error, reply.Kind)
	}
	if !jsonOutput {
		printResult(reply.Result)
	}
	return nil
}

func printResult(result *models.GenerationResult) {
	if result.Notice != "" {
		printWarning(result.Notice)
	}
	fmt.Println(strings.Repeat("=", 80))
	fmt.Print(a2a.FormatResult(themeLabel(result), result))
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%sResult %s · %d product(s) · provider %s%s\n",
		colorPurple, result.ID, len(result.Products), result.Provider, colorReset)
}

func themeLabel(result *models.GenerationResult) string {
	if result.Revision {
		return "revision · " + result.Instruction
	}
	return "current selection"
}
