package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/spf13/cobra"
)

type catalogReply struct {
	Products []catalog.Product `json:"products"`
	Channels []catalog.Channel `json:"channels"`
	Personas []catalog.Persona `json:"personas"`
	Provider string            `json:"provider"`
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the server is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, data, err := newClient().Do(cmd.Context(), http.MethodGet, "/health", nil)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("health check returned %d", status)
		}
		printSuccess(fmt.Sprintf("%s is healthy (%s)", baseURL, strings.TrimSpace(string(data))))
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List products, channels and personas",
	RunE: func(cmd *cobra.Command, args []string) error {
		var reply catalogReply
		if err := newClient().DoJSON(cmd.Context(), http.MethodGet, "/api/catalog", nil, &reply); err != nil {
			return err
		}
		fmt.Printf("Provider: %s\n\nProducts:\n", reply.Provider)
		for _, p := range reply.Products {
			fmt.Printf("  %-12s %s\n", p.ID, p.Label)
		}
		fmt.Println("\nChannels:")
		for _, ch := range reply.Channels {
			fmt.Printf("  %-12s %s\n", ch.ID, ch.Label)
		}
		fmt.Println("\nPersonas:")
		for _, p := range reply.Personas {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Show or change the session selection",
	Long: `Without flags, prints the current selection. Each flag given replaces
that field. Products and channels take "all", "none" or a comma list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		var state selection.State
		if err := client.DoJSON(cmd.Context(), http.MethodGet, "/api/selection", nil, &state); err != nil {
			return err
		}

		changed := false
		flags := cmd.Flags()
		if flags.Changed("theme") {
			state.Theme, _ = flags.GetString("theme")
			changed = true
		}
		if flags.Changed("subthemes") {
			state.Subthemes, _ = flags.GetString("subthemes")
			changed = true
		}
		if flags.Changed("instruction") {
			state.Modification, _ = flags.GetString("instruction")
			changed = true
		}
		if flags.Changed("persona") {
			persona, _ := flags.GetString("persona")
			state.Persona = selection.PersonaFilter(persona)
			changed = true
		}
		if flags.Changed("products") {
			raw, _ := flags.GetString("products")
			state.Products = parseFilter[catalog.ProductID](raw)
			changed = true
		}
		if flags.Changed("channels") {
			raw, _ := flags.GetString("channels")
			state.Channels = parseFilter[catalog.ChannelID](raw)
			changed = true
		}

		if changed {
			if err := client.DoJSON(cmd.Context(), http.MethodPut, "/api/selection", state, &state); err != nil {
				return err
			}
		}
		printSelection(state)
		return nil
	},
}

func init() {
	f := selectCmd.Flags()
	f.String("theme", "", "Central theme")
	f.String("subthemes", "", "Subthemes, free text")
	f.String("products", "", `Products: "all", "none" or a comma list`)
	f.String("channels", "", `Channels: "all", "none" or a comma list`)
	f.String("persona", "", `Persona: "Embarcador", "Transportador" or "none"`)
	f.String("instruction", "", "Revision instruction stored with the selection")
}

// parseFilter reads "all", "none"/"" or a comma list. Case is left to
// the server, which matches ids against the catalog.
func parseFilter[T ~string](raw string) selection.Filter[T] {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "all":
		return selection.All[T]()
	case "", "none":
		return selection.Explicit[T]()
	}
	var members []T
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			members = append(members, T(part))
		}
	}
	return selection.Explicit(members...)
}

func printSelection(s selection.State) {
	fmt.Printf("Theme:       %s\n", s.Theme)
	fmt.Printf("Subthemes:   %s\n", s.Subthemes)
	fmt.Printf("Products:    %s\n", s.Products)
	fmt.Printf("Channels:    %s\n", s.Channels)
	fmt.Printf("Persona:     %s\n", s.Persona)
	if s.Modification != "" {
		fmt.Printf("Instruction: %s\n", s.Modification)
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content from the session selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGeneration(cmd.Context(), "/api/generate", nil)
	},
}

var reviseCmd = &cobra.Command{
	Use:   "revise [instruction]",
	Short: "Revise the current result",
	Long:  "Revise the current result. Without an argument the instruction stored in the selection is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{"instruction": ""}
		if len(args) == 1 {
			body["instruction"] = args[0]
		}
		return runGeneration(cmd.Context(), "/api/revise", body)
	},
}

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Print the current result",
	RunE: func(cmd *cobra.Command, args []string) error {
		var reply generationReply
		if err := newClient().DoJSON(cmd.Context(), http.MethodGet, "/api/results", nil, &reply); err != nil {
			return err
		}
		printResult(reply.Result)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the prompt the next generation would send",
	RunE: func(cmd *cobra.Command, args []string) error {
		var prompt composer.Prompt
		if err := newClient().DoJSON(cmd.Context(), http.MethodPost, "/api/preview", nil, &prompt); err != nil {
			return err
		}
		if prompt.Empty() {
			printWarning("Nothing would be generated with the current selection.")
			return nil
		}
		fmt.Println(prompt.Instruction)
		fmt.Printf("\n%sProducts: %v · Channels: %v%s\n", colorPurple, prompt.Products, prompt.Channels, colorReset)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage product and channel prompt configuration",
}

var resetProductCmd = &cobra.Command{
	Use:   "reset-product <id>",
	Short: "Restore a product's default descriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/config/products/" + args[0] + "/reset"
		if err := newClient().DoJSON(cmd.Context(), http.MethodPost, path, nil, nil); err != nil {
			return err
		}
		printSuccess("Product " + args[0] + " reset to defaults")
		return nil
	},
}

var resetChannelCmd = &cobra.Command{
	Use:   "reset-channel <id>",
	Short: "Restore a channel's default prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/config/channels/" + args[0] + "/reset"
		if err := newClient().DoJSON(cmd.Context(), http.MethodPost, path, nil, nil); err != nil {
			return err
		}
		printSuccess("Channel " + args[0] + " reset to defaults")
		return nil
	},
}

func init() {
	configCmd.AddCommand(resetProductCmd, resetChannelCmd)
	rootCmd.AddCommand(healthCmd, catalogCmd, selectCmd, generateCmd, reviseCmd, resultCmd, previewCmd, configCmd)
}
