package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/psdkit/cmd/psdmask/logger"
	"github.com/joshuapare/psdkit/psd/layer"
)

var (
	extraOffset int
	extraHex    bool
)

func init() {
	rootCmd.AddCommand(newExtraCmd())
}

func newExtraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extra <file>",
		Short: "Decode a layer record's extra data field",
		Long: `The extra command decodes the extra data field of a layer record
starting at the given byte offset: the mask section, blending ranges, layer
name and the size of the additional layer information.

Example:
  psdmask extra document.psd --offset 1216
  psdmask extra dump.txt --hex --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtra(args)
		},
	}
	cmd.Flags().IntVar(&extraOffset, "offset", 0, "Byte offset of the extra data length prefix")
	cmd.Flags().BoolVar(&extraHex, "hex", false, "Treat the file as hex text")
	return cmd
}

func runExtra(args []string) error {
	path := args[0]
	printVerbose("Opening: %s\n", path)

	in, err := openInput(path, extraOffset, extraHex)
	if err != nil {
		return err
	}
	defer in.Close()

	start := in.cursor.Pos()
	ed, err := layer.DecodeExtraData(in.cursor)
	if err != nil {
		logger.Warn("extra data decode failed", "file", path, "offset", start, "err", err)
		return fmt.Errorf("failed to decode layer extra data at %d: %w", start, err)
	}
	logger.Info("extra data decoded",
		"file", path,
		"offset", start,
		"consumed", in.cursor.Pos()-start,
		"name", ed.Name,
		"channels", len(ed.Blending.Channels),
	)

	if quiet {
		return nil
	}
	return newPrinter().PrintExtraData(ed)
}
