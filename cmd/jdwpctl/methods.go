package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods <host:port> <signature>",
	Short: "List methods of the class matching a JVM type signature",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, signature := args[0], args[1]

		ctx := context.Background()
		s, err := dialSession(ctx, addr)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer s.Close()

		class, err := s.GetClassBySignature(ctx, signature)
		if err != nil {
			return fmt.Errorf("resolve class: %w", err)
		}

		methods, err := s.GetMethods(ctx, class.TypeID)
		if err != nil {
			return fmt.Errorf("get methods: %w", err)
		}

		for _, m := range methods {
			fmt.Printf("%s%s\n", m.Name, m.Signature)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
