// dissect analyzes a methodology prompt from a file or stdin and prints
// the resulting chat bubbles with their pacing.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uxcanvas/promptflow/internal/analyzer"
	"github.com/uxcanvas/promptflow/internal/models"
)

var (
	framework  string
	stage      string
	tool       string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "dissect [file]",
	Short: "Split methodology text into paced chat bubbles",
	Long: `dissect runs the prompt analysis pipeline over the given file
(or stdin when no file is given) and prints the resulting bubbles in
display order, annotated with type, priority and delay.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&framework, "framework", "", "framework name carried into the analysis metadata")
	rootCmd.Flags().StringVar(&stage, "stage", "", "stage name carried into the analysis metadata")
	rootCmd.Flags().StringVar(&tool, "tool", "", "tool name carried into the analysis metadata")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw analysis as JSON")
}

func run(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	var pctx *models.PromptContext
	if framework != "" || stage != "" || tool != "" {
		pctx = &models.PromptContext{Framework: framework, Stage: stage, Tool: tool}
	}

	analysis := analyzer.AnalyzePrompt(content, pctx)
	bubbles := analyzer.ConvertToChatBubbles(analysis)

	if jsonOutput {
		out := struct {
			Analysis *models.Analysis    `json:"analysis"`
			Bubbles  []models.ChatBubble `json:"bubbles"`
		}{analysis, bubbles}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	header := color.New(color.FgCyan, color.Bold)
	meta := color.New(color.FgYellow)
	body := color.New(color.FgWhite)

	header.Fprintf(cmd.OutOrStdout(), "strategy: %s  complexity: %s  segments: %d\n\n",
		analysis.Strategy, analysis.Metadata.Complexity, len(analysis.Segments))

	for i, bubble := range bubbles {
		meta.Fprintf(cmd.OutOrStdout(), "[%d] %s/%s +%dms\n",
			i+1, bubble.Metadata.Type, bubble.Metadata.Priority, bubble.Delay)
		body.Fprintln(cmd.OutOrStdout(), bubble.Content)
		fmt.Fprintln(cmd.OutOrStdout())
	}

	for _, rec := range analysis.Recommendations {
		meta.Fprintf(cmd.OutOrStdout(), "note: %s\n", rec)
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
