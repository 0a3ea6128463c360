package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mobilecarebd/off-white/internal/authclient"
	"github.com/mobilecarebd/off-white/internal/session"
)

// offwhite is a terminal client for the site's auth API, mostly used to
// exercise accounts and sessions against a running server without a browser.
func main() {
	var apiURL string
	var timeout time.Duration

	rootCmd := &cobra.Command{
		Use:           "offwhite",
		Short:         "Terminal client for the Off White photography API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("AUTH_API_URL", "http://localhost:8080"), "Base URL of the API server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	newStore := func() (*session.Store, error) {
		client, err := authclient.NewWithJar(apiURL, timeout)
		if err != nil {
			return nil, err
		}
		return session.New(client), nil
	}

	rootCmd.AddCommand(
		loginCmd(newStore),
		registerCmd(newStore),
		whoamiCmd(newStore),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
