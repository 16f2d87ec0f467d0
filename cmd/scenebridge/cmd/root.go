// Package cmd implements the scenebridge command line interface. File I/O
// lives here; the conversion packages never touch the filesystem.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pascal3d/scenebridge/pkg/convert"
)

var (
	configPath string
	verbose    bool

	cfg convert.Config
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "scenebridge",
	Short: "Convert between host scene snapshots and Pascal scene documents",
	Long: `scenebridge converts between a host 3D editor's scene snapshot (a
generic node tree in JSON) and the Pascal web editor's typed scene-graph
document.

Export classifies each host node (wall, door, window, column, slab, item,
...) by metadata override, name keywords, and geometry, then emits a typed
document. Import rebuilds a host tree from a document, carrying every
attribute in metadata so a later export reproduces the document exactly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if log, err = newLogger(verbose); err != nil {
			return err
		}
		if cfg, err = loadConfig(configPath); err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default $SCENEBRIDGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds a console logger writing to stderr so command output on
// stdout stays machine-readable.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	zc := zap.NewDevelopmentConfig()
	if !debug {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
