package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spounge-ai/sealbox/internal/filestore"
	"github.com/spounge-ai/sealbox/internal/storage"
)

var (
	sealInput      string
	sealCreateDirs bool

	sealCmd = &cobra.Command{
		Use:   "seal <path>",
		Short: "Encrypt plaintext through the key vault and write the ciphertext to <path>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			plaintext, err := readInput(sealInput)
			if err != nil {
				return fmt.Errorf("failed to read plaintext input: %w", err)
			}

			blobs, err := storage.New(cfg, logger)
			if err != nil {
				return err
			}

			store, err := filestore.New(args[0], cfg,
				filestore.WithLogger(logger), filestore.WithBlobStore(blobs))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if sealCreateDirs {
				if err := blobs.EnsureDir(ctx, filepath.Dir(args[0])); err != nil {
					return err
				}
			}

			if err := store.Write(ctx, plaintext); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sealed %s under %s\n", store.Path(), store.MasterKeyID())
			return nil
		},
	}
)

func init() {
	sealCmd.Flags().StringVarP(&sealInput, "in", "i", "-", "plaintext source file, or - for stdin")
	sealCmd.Flags().BoolVar(&sealCreateDirs, "create-dirs", false, "create parent directories before sealing")
}

func readInput(src string) ([]byte, error) {
	if src == "" || src == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(src)
}
