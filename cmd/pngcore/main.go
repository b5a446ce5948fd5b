// Command pngcore is a thin convenience wrapper around imgpng.DecodeFile:
// it loads a PNG from disk and either reports its dimensions or dumps the
// decoded raster as raw, row-major RGBA8 bytes. The core decoder itself
// takes no CLI flags, environment variables or files (spec.md §6); this
// binary exists only to exercise the file-loading collaborator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/poolqa/pngcore/imgpng"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output    string
		allowCgBI bool
		applyTRNS bool
		verifyCRC bool
	)

	cmd := &cobra.Command{
		Use:   "pngcore <input.png>",
		Short: "Decode a PNG file and report its dimensions, or dump raw RGBA8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raster, err := imgpng.DecodeFile(args[0], imgpng.Options{
				AllowCgBI: allowCgBI,
				ApplyTRNS: applyTRNS,
				VerifyCRC: verifyCRC,
			})
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Printf("%dx%d (pitch=%d)\n", raster.Width, raster.Height, raster.Pitch)
				return nil
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			return writeRawRGBA(f, raster)
		},
	}

	var flags *pflag.FlagSet = cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "write raw RGBA8 bytes to `file` instead of printing dimensions")
	flags.BoolVar(&allowCgBI, "allow-cgbi", false, "undo Apple CgBI channel order and premultiplied alpha")
	flags.BoolVar(&applyTRNS, "apply-trns", false, "promote tRNS simple transparency into alpha")
	flags.BoolVar(&verifyCRC, "verify-crc", false, "verify each chunk's CRC-32")

	return cmd
}

func writeRawRGBA(f *os.File, raster *imgpng.Raster) error {
	buf := make([]byte, 4)
	for _, p := range raster.Pix {
		buf[0], buf[1], buf[2], buf[3] = p.R, p.G, p.B, p.A
		if _, err := f.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
