package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pascal3d/scenebridge/pkg/pascal"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document.json>",
	Short: "Check a Pascal document for structural problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		findings := pascal.Validate(doc)
		errCount := 0
		for _, f := range findings {
			switch f.Severity {
			case pascal.SeverityError:
				errCount++
				color.Red("error   %s: %s", f.Path, f.Message)
			default:
				color.Yellow("warning %s: %s", f.Path, f.Message)
			}
		}

		if errCount > 0 {
			return fmt.Errorf("%d error(s) in %d finding(s)", errCount, len(findings))
		}
		log.Infow("document valid", "nodes", doc.Count(), "warnings", len(findings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
