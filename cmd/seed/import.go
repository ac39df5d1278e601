package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charadas/charadas-api/internal/seed"
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	importFile   string
	importObject string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Create riddles from a JSON array of {pergunta, resposta}",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "Local JSON file to import")
	importCmd.Flags().StringVar(&importObject, "object", "", "Object key in MINIO_BUCKET to import")
	importCmd.MarkFlagsMutuallyExclusive("file", "object")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importFile == "" && importObject == "" {
		return errors.New("one of --file or --object is required")
	}
	ctx := cmd.Context()
	cfg, svc, closeFn, err := openService(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	var src io.ReadCloser
	if importFile != "" {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		src = f
	} else {
		store, err := newObjectStore(ctx, cfg)
		if err != nil {
			return err
		}
		if src, err = store.DownloadFile(ctx, importObject); err != nil {
			return err
		}
	}
	defer src.Close()

	rep, err := seed.Import(ctx, svc, src)
	if rep != nil {
		for _, s := range rep.Skipped {
			logger.Warnf("skipped %s", s)
		}
		logger.Infof("imported %d charadas", len(rep.Created))
	}
	return err
}
