package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spounge-ai/sealbox/internal/filestore"
)

var (
	unsealOutput string

	unsealCmd = &cobra.Command{
		Use:   "unseal <path>",
		Short: "Read the sealed file at <path> and decrypt it through the key vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := filestore.New(args[0], cfg, filestore.WithLogger(logger))
			if err != nil {
				return err
			}

			plaintext, err := store.Read(cmd.Context())
			if err != nil {
				return err
			}

			if unsealOutput == "" || unsealOutput == "-" {
				_, err := cmd.OutOrStdout().Write(plaintext)
				return err
			}

			if err := os.WriteFile(unsealOutput, plaintext, 0o600); err != nil {
				return fmt.Errorf("failed to write plaintext output: %w", err)
			}
			return nil
		},
	}
)

func init() {
	unsealCmd.Flags().StringVarP(&unsealOutput, "out", "o", "-", "plaintext destination file, or - for stdout")
}
