package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readAuth string

var readSpaceCmd = &cobra.Command{
	Use:   "read-space [index]",
	Short: "Read a space's contents",
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
		buf, err := newDevice(m).ReadSpace(index, []byte(readAuth))
		if err != nil {
			return err
		}
		fmt.Printf("%x\n", buf)
		return nil
	},
}

func init() {
	readSpaceCmd.Flags().StringVar(&readAuth, "auth", "", "authorization value")
	rootCmd.AddCommand(readSpaceCmd)
}
