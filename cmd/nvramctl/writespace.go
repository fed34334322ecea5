package main

import (
	"github.com/spf13/cobra"
)

var (
	writeBuffer string
	writeAuth   string
)

var writeSpaceCmd = &cobra.Command{
	Use:   "write-space [index]",
	Short: "Write or extend a space's contents",
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
		return newDevice(m).WriteSpace(index, []byte(writeBuffer), []byte(writeAuth))
	},
}

func init() {
	writeSpaceCmd.Flags().StringVar(&writeBuffer, "data", "", "data to write")
	writeSpaceCmd.Flags().StringVar(&writeAuth, "auth", "", "authorization value")
	rootCmd.AddCommand(writeSpaceCmd)
}
