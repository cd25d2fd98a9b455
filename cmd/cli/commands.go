package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(policyCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(metricsCmd)

	rankingsCmd.Flags().String("level", "venue", "Scope level: venue, city or country")
	rankingsCmd.Flags().String("id", "", "Scope id (venue/city/country id)")
	rankingsCmd.Flags().String("sport", "", "Sport id")
	rankingsCmd.Flags().Int("limit", 0, "Max entries to return")
	cleanupCmd.Flags().Int("hours", 0, "Staleness threshold in hours (server default when omitted)")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the presence policy the server advertises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/presence/policy")
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Evict stale presence records",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/presence/cleanup"
		if hours, _ := cmd.Flags().GetInt("hours"); hours > 0 {
			endpoint += fmt.Sprintf("?hours=%d", hours)
		}
		return performRequest(http.MethodPost, endpoint)
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Fetch a leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		scopeID, _ := cmd.Flags().GetString("id")
		sport, _ := cmd.Flags().GetString("sport")
		limit, _ := cmd.Flags().GetInt("limit")

		params := url.Values{}
		params.Set("level", level)
		params.Set("id", scopeID)
		params.Set("sport", sport)
		if limit > 0 {
			params.Set("limit", fmt.Sprint(limit))
		}
		return performRequest(http.MethodGet, "/rankings?"+params.Encode())
	},
}

var playersCmd = &cobra.Command{
	Use:   "players <venue-id>",
	Short: "List the players currently active at a venue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/venues/"+args[0]+"/players")
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <match-id>",
	Short: "Show one match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/matches/"+args[0])
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	reqURL := host + endpoint
	fmt.Printf("Making request to %s\n", reqURL)

	req, err := http.NewRequest(method, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
