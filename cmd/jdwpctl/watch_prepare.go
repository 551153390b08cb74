package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/backkem/jdwp/pkg/jdwp"
	"github.com/spf13/cobra"
)

var watchPrepareCmd = &cobra.Command{
	Use:   "watch-prepare <host:port>",
	Short: "Install a CLASS_PREPARE event request and print its id until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := args[0]

		ctx := context.Background()
		s, err := dialSession(ctx, addr)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer s.Close()

		reqID, err := s.SetEventRequest(ctx, jdwp.EventKindClassPrepare, jdwp.SuspendPolicyNone, nil)
		if err != nil {
			return fmt.Errorf("set event request: %w", err)
		}
		fmt.Printf("installed CLASS_PREPARE request %d, press Ctrl-C to clear and exit\n", reqID)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		<-sigCh

		if err := s.ClearEventRequest(ctx, jdwp.EventKindClassPrepare, reqID); err != nil {
			return fmt.Errorf("clear event request: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchPrepareCmd)
}
