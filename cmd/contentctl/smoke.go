package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/goflux-content-engine/internal/a2a"
	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/spf13/cobra"
)

var (
	smokeTheme        string
	smokeSkipGenerate bool
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run end-to-end checks against a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeader("goFlux Content Engine - Smoke Test")
		fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, baseURL, colorReset)

		s := &smokeRunner{client: newClient()}
		checks := []smokeCheck{
			{"Health Check", s.health},
			{"Agent Card", s.agentCard},
			{"Catalog", s.catalog},
			{"Prompt Preview", s.preview},
		}
		if !smokeSkipGenerate {
			checks = append(checks, smokeCheck{"A2A Content Generation", s.generate})
		}

		passed, failed := 0, 0
		var failedNames []string
		for _, check := range checks {
			if check.fn(cmd.Context()) {
				passed++
			} else {
				failed++
				failedNames = append(failedNames, check.name)
			}
			fmt.Println()
		}

		printHeader("Test Summary")
		fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
		fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
		fmt.Printf("Total: %d\n", passed+failed)

		if failed > 0 {
			return fmt.Errorf("smoke checks failed: %s", strings.Join(failedNames, ", "))
		}
		return nil
	},
}

func init() {
	smokeCmd.Flags().StringVar(&smokeTheme, "theme", "Antecipação de fretes para transportadores", "Theme sent in the A2A generation check")
	smokeCmd.Flags().BoolVar(&smokeSkipGenerate, "skip-generate", false, "Skip the check that calls the model")
	rootCmd.AddCommand(smokeCmd)
}

type smokeCheck struct {
	name string
	fn   func(context.Context) bool
}

type smokeRunner struct {
	client *Client
}

func (s *smokeRunner) health(ctx context.Context) bool {
	printTestHeader("Testing Health Check Endpoint")
	fmt.Printf("GET %s/health\n", baseURL)

	status, body, err := s.client.Do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		printError(err.Error())
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}
	printSuccess("Health check passed")
	return true
}

func (s *smokeRunner) agentCard(ctx context.Context) bool {
	printTestHeader("Testing Agent Card Endpoint")
	fmt.Printf("GET %s%s\n", baseURL, a2a.CardPath)

	var card a2a.AgentCard
	if err := s.client.DoJSON(ctx, http.MethodGet, a2a.CardPath, nil, &card); err != nil {
		printError(err.Error())
		return false
	}
	if card.Name == "" || card.URL == "" {
		printError("Agent card is missing its name or URL")
		return false
	}
	if len(card.Skills) != 1+len(catalog.Channels()) {
		printError(fmt.Sprintf("Expected %d skills, got %d", 1+len(catalog.Channels()), len(card.Skills)))
		return false
	}
	printSuccess(fmt.Sprintf("Agent card is valid (%s %s)", card.Name, card.Version))
	return true
}

func (s *smokeRunner) catalog(ctx context.Context) bool {
	printTestHeader("Testing Catalog Endpoint")

	var reply catalogReply
	if err := s.client.DoJSON(ctx, http.MethodGet, "/api/catalog", nil, &reply); err != nil {
		printError(err.Error())
		return false
	}
	if len(reply.Products) != len(catalog.Products()) || len(reply.Channels) != len(catalog.Channels()) {
		printError(fmt.Sprintf("Catalog mismatch: %d products, %d channels", len(reply.Products), len(reply.Channels)))
		return false
	}
	printSuccess(fmt.Sprintf("Catalog lists %d products and %d channels (provider %s)",
		len(reply.Products), len(reply.Channels), reply.Provider))
	return true
}

// preview composes a prompt for a fixed selection without touching the
// session or calling the model.
func (s *smokeRunner) preview(ctx context.Context) bool {
	printTestHeader("Testing Prompt Preview")

	body := map[string]any{
		"theme":    smokeTheme,
		"products": []catalog.ProductID{catalog.ProductNaConta},
		"channels": []catalog.ChannelID{catalog.ChannelEmail},
		"persona":  string(catalog.PersonaTransportador),
	}
	var prompt composer.Prompt
	if err := s.client.DoJSON(ctx, http.MethodPost, "/api/preview", body, &prompt); err != nil {
		printError(err.Error())
		return false
	}
	if prompt.Empty() || !strings.Contains(prompt.Instruction, smokeTheme) {
		printError("Preview does not mention the theme")
		return false
	}
	if prompt.Schema == nil {
		printError("Preview has no response schema")
		return false
	}
	printSuccess(fmt.Sprintf("Preview composed (%d characters)", len(prompt.Instruction)))
	return true
}

type rpcReply struct {
	Result json.RawMessage   `json:"result"`
	Error  *a2a.JSONRPCError `json:"error"`
}

func (s *smokeRunner) generate(ctx context.Context) bool {
	printTestHeader("Testing A2A Content Generation")
	fmt.Printf("POST %s%s\n", baseURL, a2a.ContentPath)
	fmt.Printf("%sTheme:%s %s\n\n", colorCyan, colorReset, smokeTheme)

	data, err := a2a.DataPart(map[string]any{
		"channels": []catalog.ChannelID{catalog.ChannelSocial},
		"products": []catalog.ProductID{catalog.ProductNaConta},
	})
	if err != nil {
		printError(err.Error())
		return false
	}
	params, err := json.Marshal(a2a.MessageParams{
		Message: a2a.A2AMessage{
			Kind:  "message",
			Role:  a2a.RoleUser,
			Parts: []a2a.MessagePart{a2a.TextPart(smokeTheme), data},
		},
		Configuration: a2a.MessageConfiguration{Blocking: true, AcceptedOutputModes: []string{"text", "data"}},
	})
	if err != nil {
		printError(err.Error())
		return false
	}
	req := a2a.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      fmt.Sprintf("smoke-%d", time.Now().Unix()),
		Method:  "message/send",
		Params:  params,
	}

	var reply rpcReply
	if err := s.client.DoJSON(ctx, http.MethodPost, a2a.ContentPath, req, &reply); err != nil {
		printError(err.Error())
		return false
	}
	if reply.Error != nil {
		printError(fmt.Sprintf("RPC error %d: %s", reply.Error.Code, reply.Error.Message))
		return false
	}

	var task a2a.TaskResult
	if err := json.Unmarshal(reply.Result, &task); err != nil {
		printError(fmt.Sprintf("Invalid task result: %v", err))
		return false
	}
	if task.Status.State != a2a.StateCompleted {
		msg := ""
		if task.Status.Message != nil && len(task.Status.Message.Parts) > 0 {
			msg = task.Status.Message.Parts[0].Text
		}
		printError(fmt.Sprintf("Expected state '%s', got '%s': %s", a2a.StateCompleted, task.Status.State, msg))
		return false
	}

	printSuccess("Content generation completed successfully")
	if task.Status.Message != nil {
		fmt.Printf("\n%sGenerated Content:%s\n", colorGreen, colorReset)
		fmt.Println(strings.Repeat("=", 80))
		for _, part := range task.Status.Message.Parts {
			fmt.Println(part.Text)
		}
		fmt.Println(strings.Repeat("=", 80))
	}
	return true
}
