package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the clip2drive application
var rootCmd = &cobra.Command{
	Use:   "clip2drive",
	Short: "Uploads the clipboard as a shareable Markdown note on Google Drive",
	Long: `clip2drive captures the text content of the system clipboard, uploads it
as a Markdown file to a fixed Google Drive folder, makes the file readable by
anyone with the link, and writes the share link back to the clipboard.

It is intended to be bound to a desktop hotkey: one press turns whatever you
just copied into a shareable note.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "clip2drive version %s\n" .Version}}`)

	// If no subcommand is provided, run the share command by default.
	// Bare flags such as --auth-only are forwarded to it; --help and
	// --version stay on the root command.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "share")
	} else if strings.HasPrefix(os.Args[1], "-") && !isRootFlag(os.Args[1]) {
		os.Args = append([]string{os.Args[0], "share"}, os.Args[1:]...)
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func isRootFlag(arg string) bool {
	switch arg {
	case "--help", "-h", "--version", "-v":
		return true
	}
	return false
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clip2drive %s\n", version)
		},
	}
}
