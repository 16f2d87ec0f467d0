package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pascal3d/scenebridge/pkg/convert"
	"github.com/pascal3d/scenebridge/pkg/kernel/sdfx"
	"github.com/pascal3d/scenebridge/pkg/pascal"
	"github.com/pascal3d/scenebridge/pkg/placeholder"
)

var (
	importOut    string
	importMeshes string
)

var importCmd = &cobra.Command{
	Use:   "import <document.json>",
	Short: "Convert a Pascal document to a host scene snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		root, err := convert.Import(doc)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return err
		}
		if err := writeOutput(importOut, data); err != nil {
			return err
		}
		log.Infow("imported", "nodes", root.Count(), "out", outName(importOut))

		if importMeshes != "" {
			meshes, err := placeholder.Meshes(root, sdfx.New())
			if err != nil {
				return err
			}
			meshData, err := json.Marshal(meshes)
			if err != nil {
				return err
			}
			if err := os.WriteFile(importMeshes, meshData, 0o644); err != nil {
				return err
			}
			log.Infow("wrote placeholder meshes", "count", len(meshes), "out", importMeshes)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "output file (default stdout)")
	importCmd.Flags().StringVar(&importMeshes, "meshes", "", "also write placeholder meshes to this file")
	rootCmd.AddCommand(importCmd)
}

func readDocument(path string) (*pascal.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return pascal.Decode(data)
}
