package main

import (
	"github.com/spf13/cobra"
)

var disableCreateCmd = &cobra.Command{
	Use:   "disable-create",
	Short: "Permanently disable further CreateSpace calls",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		return newDevice(m).DisableCreate()
	},
}

func init() {
	rootCmd.AddCommand(disableCreateCmd)
}
