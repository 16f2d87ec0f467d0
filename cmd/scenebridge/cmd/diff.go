package cmd

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a.json> <b.json>",
	Short: "Show a JSON merge patch between two Pascal documents",
	Long: `diff decodes both documents (so malformed input is rejected), then
prints the RFC 7386 merge patch that turns the first into the second.
Useful for checking that a round trip or a re-export changed nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Decode both sides first so structural errors point at a file.
		for _, path := range args {
			if _, err := readDocument(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		a, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		patch, err := jsonpatch.CreateMergePatch(a, b)
		if err != nil {
			return fmt.Errorf("computing merge patch: %w", err)
		}

		if string(patch) == "{}" {
			log.Infow("documents are equivalent")
			return nil
		}
		fmt.Println(string(patch))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
