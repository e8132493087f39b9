package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"solstice/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "solsticec",
	Short: "Solstice type interner demo CLI",
	Long:  `solsticec is a thin command-line front end over the solstice type interner and global context`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch mode, _ := cmd.Flags().GetString("color"); mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
		cfg, ok, err := loadProjectConfig(".")
		if err != nil {
			slog.Warn("failed to read solstice.toml", "error", err)
			return
		}
		if ok {
			slog.Debug("loaded project config", "package", cfg.Package.Name)
		}
	},
}

// main wires up the CLI's subcommands and global flags, then executes the
// root command. This front end is not part of the type interner core; it
// exists only to give the core's factory surface somewhere to run from.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	rootCmd.Version = version.Version

	rootCmd.AddCommand(internCmd)
	rootCmd.AddCommand(globalsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "accepted but not read by any command")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
