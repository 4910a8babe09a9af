package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/spounge-ai/sealbox/internal/errors"
	"github.com/spounge-ai/sealbox/internal/storage"
)

// statusCmd inspects the blob backend only; the vault is never contacted.
var statusCmd = &cobra.Command{
	Use:   "status <path>",
	Short: "Report whether a sealed file exists, without contacting the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		blobs, err := storage.New(cfg, logger)
		if err != nil {
			return err
		}

		ciphertext, err := blobs.Read(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, apperrors.ErrFileNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not sealed (no file)\n", args[0])
				return nil
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: sealed (%d ciphertext bytes, %s backend, key %s)\n",
			args[0], len(ciphertext), cfg.Storage.Backend, cfg.MasterKeyID())
		return nil
	},
}
