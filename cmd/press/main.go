package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/press"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "press",
		Short:         "Simulate IoT button presses against a local lasttimei listener",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			level, _ := cmd.Flags().GetString("log-level")
			return logger.SetLevelString(level)
		},
	}

	rootCmd.PersistentFlags().String("url", press.DefaultBaseURL, "Base URL of the service")
	rootCmd.PersistentFlags().Duration("timeout", press.DefaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(sendCmd(), getCmd())
	return rootCmd
}

func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [serial-number...]",
		Short: "Press one or more buttons",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			url, _ := flags.GetString("url")
			timeout, _ := flags.GetDuration("timeout")
			count, _ := flags.GetInt("count")
			workers, _ := flags.GetInt("workers")
			clickType, _ := flags.GetString("click-type")
			verify, _ := flags.GetBool("verify")
			verbose, _ := flags.GetBool("verbose")

			stats, err := press.Run(cmd.Context(), &press.Config{
				BaseURL:       url,
				Presses:       count,
				Workers:       workers,
				Timeout:       timeout,
				SerialNumbers: args,
				ClickType:     clickType,
				Verify:        verify,
				Verbose:       verbose,
			})
			if err != nil {
				return err
			}
			if stats.Failed > 0 || stats.StoreErrors > 0 {
				return fmt.Errorf("%d of %d presses were not recorded", stats.Failed+stats.StoreErrors, stats.Submitted)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", press.DefaultPresses, "Number of presses to submit")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Number of concurrent workers")
	cmd.Flags().String("click-type", press.DefaultClickType, "Click type: SINGLE, DOUBLE or LONG")
	cmd.Flags().Bool("verify", false, "Read back every recorded press")
	cmd.Flags().Bool("verbose", false, "Log every press")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a recorded press",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, _ := cmd.Flags().GetString("url")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client := press.NewHTTPClient(url, &http.Client{Timeout: timeout})
			rec, err := client.Get(ctx, args[0])
			if err != nil {
				return err
			}

			out := struct {
				ID           string `json:"id"`
				SerialNumber string `json:"serialNumber"`
				Action       string `json:"action"`
				Time         string `json:"time"`
			}{rec.ID, rec.SerialNumber, rec.Action, rec.Time().UTC().Format(time.RFC3339Nano)}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
