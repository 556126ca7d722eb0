package main

import (
	"fmt"
	"os"

	"github.com/bricksave/brs"
	"github.com/spf13/cobra"
)

func newRewriteCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "rewrite <file.brs>",
		Short: "Round-trip a save file through the reader and writer at the newest version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := brs.Open(f)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}

			data, err := r.IntoWriteData()
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}

			if outputPath == "" {
				outputPath = path + ".rewrite.brs"
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := brs.WriteSave(out, data); err != nil {
				return fmt.Errorf("write: %w", err)
			}

			fmt.Printf("wrote %s\n", outputPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: <input>.rewrite.brs)")

	return cmd
}
