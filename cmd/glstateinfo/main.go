// Command glstateinfo inspects GL capability profiles and the renderer
// state resolved from them.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/probe"
)

var (
	profilePath string
	presetName  string
	listPresets bool
	verbose     bool
)

// rootCmd resolves a profile (from a file, a preset or the default) and
// prints the resulting bindings.
var rootCmd = &cobra.Command{
	Use:   "glstateinfo",
	Short: "Inspect GL capability profiles and resolved renderer state",
	Long: `glstateinfo resolves a GL capability profile the same way a renderer
would at context creation and prints which implementation variant every
operation slot ends up bound to, plus the extensions the resolution
actually relied on.

Profiles come from a YAML file (--profile), a built-in preset
(--preset), or a live GPU adapter (the probe subcommand).`,
	// SilenceUsage keeps argument errors from dumping the whole help text.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if listPresets {
			for _, name := range glstate.PresetNames() {
				fmt.Println(name)
			}
			return nil
		}
		p, err := resolveProfile()
		if err != nil {
			return err
		}
		return printResolved(p)
	},
}

// probeCmd derives a profile from the local GPU adapter.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Derive a profile from the local GPU adapter and resolve it",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		p, err := probe.Probe()
		if err != nil {
			return err
		}
		data, err := p.Marshal()
		if err != nil {
			return err
		}
		fmt.Println(renderSection("Probed profile"))
		fmt.Print(string(data))
		fmt.Println()
		return printResolved(p)
	},
}

func setupLogging() {
	if !verbose {
		return
	}
	glstate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func resolveProfile() (glstate.Profile, error) {
	switch {
	case profilePath != "" && presetName != "":
		return glstate.Profile{}, errors.New("--profile and --preset are mutually exclusive")
	case profilePath != "":
		return glstate.LoadProfile(profilePath)
	case presetName != "":
		return glstate.PresetByName(presetName)
	default:
		return glstate.PresetByName(glstate.PresetDesktopCore)
	}
}

func printResolved(p glstate.Profile) error {
	ctx, err := glstate.NewContext(p)
	if err != nil {
		return err
	}
	fmt.Print(renderContext(ctx))
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "YAML capability profile to resolve")
	rootCmd.Flags().StringVar(&presetName, "preset", "", "built-in preset to resolve")
	rootCmd.Flags().BoolVar(&listPresets, "list-presets", false, "list built-in presets and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(probeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
