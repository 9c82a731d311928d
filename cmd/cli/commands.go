package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(metricsCmd)

	statsCmd.Flags().StringVar(&statsPlayer1, "player1", "", "First player of the left team")
	statsCmd.Flags().StringVar(&statsPlayer2, "player2", "", "Second player of the left team")
	statsCmd.Flags().StringVar(&statsPlayer3, "player3", "", "First player of the right team")
	statsCmd.Flags().StringVar(&statsPlayer4, "player4", "", "Second player of the right team")
}

var (
	statsPlayer1 string
	statsPlayer2 string
	statsPlayer3 string
	statsPlayer4 string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the registered club members",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/users")
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register a new club member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/users", map[string]string{"name": args[0]})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tennis records and win rate for a team filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		for param, value := range map[string]string{
			"player1": statsPlayer1,
			"player2": statsPlayer2,
			"player3": statsPlayer3,
			"player4": statsPlayer4,
		} {
			if value != "" {
				query.Set(param, value)
			}
		}
		return performGetRequest("/tennis/stats?" + query.Encode())
	},
}

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the days with billiards records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/billiards/dates")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings <date>",
	Short: "Show the ranked billiards standings for a day (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/billiards/records?date=" + url.QueryEscape(args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
