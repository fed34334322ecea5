package main

import (
	"github.com/spf13/cobra"
)

var (
	createSize     uint64
	createControls string
	createAuth     string
)

var createSpaceCmd = &cobra.Command{
	Use:   "create-space [index]",
	Short: "Create a new space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		controls, err := parseControls(createControls)
		if err != nil {
			return err
		}
		m, err := openManager()
		if err != nil {
			return err
		}
		return newDevice(m).CreateSpace(index, createSize, controls, []byte(createAuth))
	},
}

func init() {
	createSpaceCmd.Flags().Uint64Var(&createSize, "size", 0, "space size in bytes")
	createSpaceCmd.Flags().StringVar(&createControls, "controls", "",
		"comma-separated control list, e.g. write-authorization,boot-read-lock")
	createSpaceCmd.Flags().StringVar(&createAuth, "auth", "", "authorization value")
	rootCmd.AddCommand(createSpaceCmd)
}
