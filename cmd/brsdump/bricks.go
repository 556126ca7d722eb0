package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bricksave/brs"
	"github.com/spf13/cobra"
)

func newBricksCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "bricks <file.brs>",
		Short: "List bricks from a save file's brick stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := brs.Open(f)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}

			screenshot, advance := r.ScreenshotData()
			if _, err := io.Copy(io.Discard, screenshot); err != nil {
				return fmt.Errorf("screenshot: %w", err)
			}
			screenReader, err := advance()
			if err != nil {
				return fmt.Errorf("screenshot: %w", err)
			}

			dec, _, err := screenReader.Bricks()
			if err != nil {
				return fmt.Errorf("bricks: %w", err)
			}

			n := 0
			for dec.Next() {
				if limit > 0 && n >= limit {
					break
				}
				b := dec.Brick()
				fmt.Printf("%d: asset=%d pos=%v dir=%d rot=%d material=%d\n",
					n, b.AssetNameIndex, b.Position, b.Direction, b.Rotation, b.MaterialIndex)
				n++
			}
			if err := dec.Err(); err != nil {
				return fmt.Errorf("bricks: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of bricks to print (0 = unlimited)")

	return cmd
}
