package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spaceInfoCmd = &cobra.Command{
	Use:   "space-info [index]",
	Short: "Show a single space's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		m, err := openManager()
		if err != nil {
			return err
		}
		info, err := newDevice(m).GetSpaceInfo(index)
		if err != nil {
			return err
		}
		fmt.Printf("size: %d controls: %v read-locked: %v write-locked: %v\n",
			info.Size, info.Controls, info.ReadLocked, info.WriteLocked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spaceInfoCmd)
}
