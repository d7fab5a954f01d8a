package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/psdkit/cmd/psdmask/logger"
	"github.com/joshuapare/psdkit/psd/mask"
)

var (
	maskOffset int
	maskHex    bool
)

func init() {
	rootCmd.AddCommand(newMaskCmd())
}

func newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask <file>",
		Short: "Decode a layer mask / adjustment layer data section",
		Long: `The mask command decodes the layer mask section that starts at the
given byte offset (at its 4-byte length prefix) and prints the vector and
raster masks it describes.

Example:
  psdmask mask layer.bin
  psdmask mask document.psd --offset 1234 --json
  psdmask mask dump.txt --hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMask(args)
		},
	}
	cmd.Flags().IntVar(&maskOffset, "offset", 0, "Byte offset of the section length prefix")
	cmd.Flags().BoolVar(&maskHex, "hex", false, "Treat the file as hex text")
	return cmd
}

func runMask(args []string) error {
	path := args[0]
	printVerbose("Opening: %s\n", path)

	in, err := openInput(path, maskOffset, maskHex)
	if err != nil {
		return err
	}
	defer in.Close()

	start := in.cursor.Pos()
	sec, err := mask.Decode(in.cursor)
	if err != nil {
		logger.Warn("mask decode failed", "file", path, "offset", start, "err", err)
		return fmt.Errorf("failed to decode mask section at %d: %w", start, err)
	}
	logger.Info("mask decoded",
		"file", path,
		"offset", start,
		"consumed", in.cursor.Pos()-start,
		"file_size", len(in.data),
		"vector", sec.Vector != nil,
		"raster", sec.Raster != nil,
	)
	printVerbose("Consumed %d bytes\n", in.cursor.Pos()-start)

	if quiet {
		return nil
	}
	return newPrinter().PrintSection(sec)
}
