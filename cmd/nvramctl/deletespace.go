package main

import (
	"github.com/spf13/cobra"
)

var deleteAuth string

var deleteSpaceCmd = &cobra.Command{
	Use:   "delete-space [index]",
	Short: "Delete a space",
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
		return newDevice(m).DeleteSpace(index, []byte(deleteAuth))
	},
}

func init() {
	deleteSpaceCmd.Flags().StringVar(&deleteAuth, "auth", "", "authorization value")
	rootCmd.AddCommand(deleteSpaceCmd)
}
