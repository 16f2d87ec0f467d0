package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pascal3d/scenebridge/pkg/classify"
	"github.com/pascal3d/scenebridge/pkg/convert"
	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/rules"
	"github.com/pascal3d/scenebridge/pkg/scene"
)

var (
	exportOut   string
	exportRules string
)

var exportCmd = &cobra.Command{
	Use:   "export <snapshot.json>",
	Short: "Convert a host scene snapshot to a Pascal document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := readSnapshot(args[0])
		if err != nil {
			return err
		}

		exporter := &convert.Exporter{Config: cfg}
		if exportRules != "" {
			src, err := os.ReadFile(exportRules)
			if err != nil {
				return fmt.Errorf("reading rules script: %w", err)
			}
			engine := rules.New(string(src))
			exporter.Classify = engine.Classifier(classify.Classify, func(err error) {
				log.Warnw("rules script failed, falling back to heuristics", "err", err)
			})
		}

		doc, err := exporter.Export(root)
		if err != nil {
			return err
		}

		data, err := pascal.Encode(doc)
		if err != nil {
			return err
		}
		if err := writeOutput(exportOut, data); err != nil {
			return err
		}

		log.Infow("exported", "nodes", doc.Count(), "out", outName(exportOut))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&exportRules, "rules", "", "optional classification rules script")
	rootCmd.AddCommand(exportCmd)
}

// readSnapshot loads a host scene snapshot. Nodes with an omitted scale get
// the identity scale so hand-written snapshots behave sensibly.
func readSnapshot(path string) (*scene.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var root scene.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	fixZeroScale(&root)
	return &root, nil
}

func fixZeroScale(n *scene.Node) {
	if n.Transform.Scale == (scene.Vec3{}) {
		n.Transform.Scale = scene.Vec3{X: 1, Y: 1, Z: 1}
	}
	for _, c := range n.Children {
		fixZeroScale(c)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func outName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
