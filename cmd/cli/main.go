package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobank-cli",
		Short: "GoBank CLI tool",
		Long:  `A command line interface for interacting with the GoBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Client commands
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Client operations",
	}
	clientCmd.AddCommand(registerClientCmd(), showClientCmd(), listClientsCmd())
	rootCmd.AddCommand(clientCmd)

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	accountCmd.AddCommand(openAccountCmd(), showAccountCmd(), listAccountsCmd(), statementCmd())
	rootCmd.AddCommand(accountCmd)

	// Transaction commands
	rootCmd.AddCommand(depositCmd(), withdrawCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func registerClientCmd() *cobra.Command {
	var name, birthDate, taxID, address string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/clients", map[string]string{
				"name":       name,
				"birth_date": birthDate,
				"tax_id":     taxID,
				"address":    address,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&taxID, "tax-id", "", "Tax identifier (CPF)")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("tax-id")

	return cmd
}

func showClientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <tax-id>",
		Short: "Show a client by tax identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/clients/" + args[0])
		},
	}
}

func listClientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/clients")
		},
	}
}

func openAccountCmd() *cobra.Command {
	var taxID, kind string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open an account for an existing client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/accounts", map[string]string{
				"tax_id": taxID,
				"kind":   kind,
			})
		},
	}

	cmd.Flags().StringVar(&taxID, "tax-id", "", "Tax identifier (CPF) of the owner")
	cmd.Flags().StringVar(&kind, "kind", "checking", "Account kind (checking or savings)")
	cmd.MarkFlagRequired("tax-id")

	return cmd
}

func showAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show an account by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts")
		},
	}
}

func statementCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "statement <number>",
		Short: "Print an account statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + args[0] + "/statement"
			if kind != "" {
				path += "?kind=" + kind
			}
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Restrict records to one kind (deposit or withdrawal)")

	return cmd
}

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <number> <amount>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account number %q", args[0])
			}
			return postJSON("/api/v1/deposits", map[string]any{
				"account_number": number,
				"amount":         args[1],
			})
		},
	}
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <number> <amount>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account number %q", args[0])
			}
			return postJSON("/api/v1/withdrawals", map[string]any{
				"account_number": number,
				"amount":         args[1],
			})
		},
	}
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
	} else {
		printJSON(decoded)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request rejected (status %d)", resp.StatusCode)
	}
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
