package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/charadas/charadas-api/internal/seed"
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	exportFile    string
	exportObject  string
	exportPresign time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every stored riddle as a JSON array",
	Long:  "Writes to stdout by default, to a local file with --file or to MINIO_BUCKET with --object.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "Local file to write")
	exportCmd.Flags().StringVar(&exportObject, "object", "", "Object key in MINIO_BUCKET to write")
	exportCmd.Flags().DurationVar(&exportPresign, "presign", 0, "With --object, print a download URL valid for this long")
	exportCmd.MarkFlagsMutuallyExclusive("file", "object")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, svc, closeFn, err := openService(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	var buf bytes.Buffer
	n, err := seed.Export(ctx, svc, &buf)
	if err != nil {
		return err
	}

	switch {
	case exportFile != "":
		if err := os.WriteFile(exportFile, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
	case exportObject != "":
		store, err := newObjectStore(ctx, cfg)
		if err != nil {
			return err
		}
		if err := store.UploadFile(ctx, exportObject, bytes.NewReader(buf.Bytes()), int64(buf.Len()), "application/json"); err != nil {
			return err
		}
		if exportPresign > 0 {
			u, err := store.GetPresignedURL(ctx, exportObject, exportPresign)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
	default:
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
	}
	logger.Infof("exported %d charadas", n)
	return nil
}
