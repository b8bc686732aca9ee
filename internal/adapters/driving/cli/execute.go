package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

var executeResultJSON string

var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Execute a search result",
	Long: `Performs the action of a search result: opens the file, launches the
application, copies the calculation, and so on.

The result is given as the JSON produced by 'finder search --json', either
via --result or on stdin:

  finder search --json "report" | jq '.[0]' | finder execute`,
	Args: cobra.NoArgs,
	RunE: runExecute,
}

func init() {
	executeCmd.Flags().StringVar(&executeResultJSON, "result", "", "search result JSON (reads stdin when empty)")
	rootCmd.AddCommand(executeCmd)
}

func runExecute(cmd *cobra.Command, _ []string) error {
	if engineService == nil {
		return errors.New("search engine not configured")
	}

	raw := []byte(executeResultJSON)
	if len(raw) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading result from stdin: %w", err)
		}
		raw = data
	}
	if len(raw) == 0 {
		return errors.New("no result given: pass --result or pipe JSON on stdin")
	}

	var result domain.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("parsing result JSON: %w", err)
	}

	if err := engineService.ExecuteResult(cmd.Context(), &result); err != nil {
		return fmt.Errorf("executing result: %w", err)
	}

	cmd.Printf("Executed: %s\n", result.Title)
	return nil
}
