package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show aggregate space usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		info, err := newDevice(m).GetInfo()
		if err != nil {
			return err
		}
		fmt.Printf("total: %d available: %d max spaces: %d allocated: %v\n",
			info.TotalSize, info.AvailableSize, info.MaxSpaces, info.SpaceList)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
