// Package main provides a command-line front end to the resume parser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeparse",
	Short: "Parse resumes without running the HTTP server",
	Long:  "resumeparse extracts contact details, skills, education and experience from a PDF or DOCX resume and prints them as JSON. It also issues admin tokens for the server.",
}

func main() {
	// .env is read by config.Load in each subcommand
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
