// Package app contains the Cobra command tree for trackrecord.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "trackrecord",
	Short: "A personal career activity tracker and analytics engine",
	Long: `trackrecord keeps a log of your career activities and turns it into
insights: which skills you use and how often, which achievements are worth
putting on a resume, how your activity trends month over month, and what
small improvements would make the log more valuable.

Run 'trackrecord add' to log an activity, then 'trackrecord insights' for
the full analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Color is off when asked for, or when stdout is not a terminal.
		if flagNoColor {
			output.SetNoColor(true)
			return
		}
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("trackrecord", appVersion)
		fmt.Println()
		fmt.Println("Log activities and analyze your career. Use a subcommand:")
		fmt.Println("  add           Log a career activity")
		fmt.Println("  list          Browse and inspect logged entries")
		fmt.Println("  import        Import entries from JSON exports")
		fmt.Println("  delete        Remove an entry by ID or ID prefix")
		fmt.Println("  insights      Full analysis: skills, achievements, trends, quick wins")
		fmt.Println("  summary       Compact check-in view with priority actions")
		fmt.Println("  skills        Skill frequency, rarity, and growth")
		fmt.Println("  achievements  Resume-worthy accomplishments, scored")
		fmt.Println("  trends        Month-by-month activity trends")
		fmt.Println("  suggest       Quick wins to improve your log")
		fmt.Println("  track         Snapshot insight metrics and compare over time")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/trackrecord/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
