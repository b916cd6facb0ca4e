package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/slink/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for slink including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  slink version                # Show version
  slink version --short        # Show short version only
  slink version --format json  # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	switch versionFormat {
	case "json":
		return outputVersionJSON()
	case "text":
		if versionShort {
			fmt.Println(version.GetShortVersion())
			return nil
		}
		return outputVersionText()
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}

func outputVersionText() error {
	info := version.GetBuildInfo()

	fmt.Printf("slink %s", info.Version)

	if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
		fmt.Printf(" (%s)", info.GitCommit[:7])
	}

	fmt.Println()

	if !info.BuildTime.IsZero() {
		fmt.Printf("Built: %s\n", info.BuildTime.Format("2006-01-02 15:04:05 UTC"))
	}

	fmt.Printf("Go: %s\n", info.GoVersion)
	fmt.Printf("Platform: %s\n", info.Platform)

	return nil
}

func outputVersionJSON() error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(version.GetBuildInfo())
}
