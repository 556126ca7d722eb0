package main

import (
	"fmt"
	"os"

	"github.com/bricksave/brs"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.brs>",
		Short: "Print a save file's header metadata",
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

			h1 := r.Header1()
			h2 := r.Header2()

			fmt.Printf("version:      %s\n", r.Version())
			fmt.Printf("map:          %s\n", h1.Map)
			fmt.Printf("author:       %s (%s)\n", h1.Author.Name, h1.Author.ID)
			fmt.Printf("description:  %s\n", h1.Description)
			if h1.Host != nil {
				fmt.Printf("host:         %s (%s)\n", h1.Host.Name, h1.Host.ID)
			}
			if h1.SaveTime != nil {
				fmt.Printf("save time:    %s\n", h1.SaveTime.Format("2006-01-02T15:04:05Z"))
			}
			fmt.Printf("brick count:  %d\n", h1.BrickCount)
			fmt.Printf("mods:         %d\n", len(h2.Mods))
			fmt.Printf("brick assets: %d\n", len(h2.BrickAssets))
			fmt.Printf("colors:       %d\n", len(h2.Colors))
			fmt.Printf("materials:    %d\n", len(h2.Materials))
			fmt.Printf("owners:       %d\n", len(h2.BrickOwners))

			return nil
		},
	}
}
