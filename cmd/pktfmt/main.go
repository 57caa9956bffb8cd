// Pktfmt renders RFC-style packet diagrams from field definitions.
//
// It ships a table of common protocol headers, accepts inline
// "Name:bits,..." definitions or JSON documents, and draws the bordered
// bit-field diagram with an optional bit-number ruler.
//
// Usage:
//
//	pktfmt tcp                              # Built-in TCP header
//	pktfmt list                             # Show all built-in protocols
//	pktfmt "Type:16,Length:16,Payload:*"    # Custom inline format
//	pktfmt packet.json                      # Load from JSON file
//	pktfmt udp --unicode                    # Pretty Unicode output
//	pktfmt ip -b 16                         # 16 bits per row
//
// See 'pktfmt --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/pktfmt/internal/logging"
	"github.com/muurk/pktfmt/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pktfmt [protocol | definition | file.json]",
	Short: "RFC-style packet diagram generator",
	Long: `Generate RFC-style packet diagrams from field definitions.

The argument is a built-in protocol name (see 'pktfmt list'), an inline
definition like "Type:16,Length:16,Payload:*", or the path to a JSON file
with a 'fields' array. The diagram is written to stdout.`,
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (runRender -> resolveOptions -> rootCmd).
	rootCmd.RunE = runRender

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pktfmt %s\n", version.Full())
	},
}
