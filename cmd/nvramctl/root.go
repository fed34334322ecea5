// Package main implements nvramctl, a command-line client for exercising an
// nvram.Manager from a shell, grounded on the cobra/viper command tree of
// go-apfs's cmd package.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/outofforest/nvram/device"
	"github.com/outofforest/nvram/nvram"
	"github.com/outofforest/nvram/storage/filestore"
	"github.com/outofforest/nvram/storage/memstore"
)

var (
	backend  string
	storeDir string
)

var rootCmd = &cobra.Command{
	Use:     "nvramctl",
	Short:   "Inspect and exercise an access-controlled NVRAM store",
	Version: "0.1.0-dev",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "file", "storage backend: file or memory")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "./nvram-data", "directory for the file backend")

	viper.SetEnvPrefix("NVRAMCTL")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("store-dir", rootCmd.PersistentFlags().Lookup("store-dir"))
}

// openManager builds a Manager over the backend selected by --backend. The
// memory backend exists for quick experimentation; it holds nothing across
// process restarts.
func openManager() (*nvram.Manager, error) {
	be := viper.GetString("backend")
	switch be {
	case "memory":
		return nvram.New(memstore.New(), slog.Default()), nil
	case "file":
		dir := viper.GetString("store-dir")
		store, err := filestore.Open(dir)
		if err != nil {
			return nil, err
		}
		return nvram.New(store, slog.Default()), nil
	default:
		return nil, fmt.Errorf("unknown backend %q, expected file or memory", be)
	}
}

// newDevice wraps m in a device.Adapter using the same default logger as
// openManager's Manager.
func newDevice(m *nvram.Manager) *device.Adapter {
	return device.New(m, slog.Default())
}
