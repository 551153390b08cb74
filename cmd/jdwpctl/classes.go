package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes <host:port> <signature>",
	Short: "List loaded classes matching a JVM type signature",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, signature := args[0], args[1]

		ctx := context.Background()
		s, err := dialSession(ctx, addr)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer s.Close()

		classes, err := s.GetClassesBySignature(ctx, signature)
		if err != nil {
			return fmt.Errorf("get classes: %w", err)
		}

		for _, c := range classes {
			fmt.Printf("%-10s %#x\tstatus=%d\n", c.Tag, uint64(c.TypeID), c.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
