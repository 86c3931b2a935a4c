package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Guyuepp/creatorhub/internal/config"
)

var (
	backendURL   string
	updateSecret string
	output       string = "text" // "text" or "json"
)

var rootCmd = &cobra.Command{
	Use:   "similarityctl",
	Short: "Maintain the user similarity relation behind recommendations",
	Long: `similarityctl rebuilds the user similarity relation, either in this process
against the configured database or by calling a running server's admin endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		c, err := config.ClientFromEnv(config.Client{
			BackendURL:   backendURL,
			UpdateSecret: updateSecret,
		}, os.Getenv)
		if err != nil {
			return err
		}
		backendURL, updateSecret = c.BackendURL, c.UpdateSecret
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "api", "", "Server URL (defaults to BACKEND_URL env var)")
	rootCmd.PersistentFlags().StringVar(&updateSecret, "secret", "", "Admin secret (defaults to UPDATE_SECRET env var)")
	rootCmd.PersistentFlags().StringVar(&output, "output", output, "Output format: text or json")

	rootCmd.AddCommand(triggerCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
