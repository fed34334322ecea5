package main

import (
	"github.com/spf13/cobra"
)

var (
	lockWriteAuth string
	lockReadAuth  string
)

var lockWriteCmd = &cobra.Command{
	Use:   "lock-write [index]",
	Short: "Set a write lock on a space",
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
		return newDevice(m).LockSpaceWrite(index, []byte(lockWriteAuth))
	},
}

var lockReadCmd = &cobra.Command{
	Use:   "lock-read [index]",
	Short: "Set a read lock on a space",
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
		return newDevice(m).LockSpaceRead(index, []byte(lockReadAuth))
	},
}

func init() {
	lockWriteCmd.Flags().StringVar(&lockWriteAuth, "auth", "", "authorization value")
	lockReadCmd.Flags().StringVar(&lockReadAuth, "auth", "", "authorization value")
	rootCmd.AddCommand(lockWriteCmd)
	rootCmd.AddCommand(lockReadCmd)
}
