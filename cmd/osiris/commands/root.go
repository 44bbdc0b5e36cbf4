package commands

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/osiris-intel/osiris/internal/catalog"
	"github.com/osiris-intel/osiris/internal/config"
)

var cfgFile string

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "osiris",
		Short:         "Threat intelligence dashboard",
		Long:          "OSIRIS: dark web threat intelligence dashboard with web and terminal front ends.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "osiris.yaml", "config file path")

	root.AddCommand(
		newServeCmd(),
		newTUICmd(),
		newRenderCmd(),
		newViewsCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist. Any other read or parse failure is returned.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Defaults(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog returns the seed catalog (embedded unless data_file is set)
// without the profile overlay, and the same catalog with it applied.
func loadCatalog(cfg *config.Config) (base, profiled *catalog.Catalog, err error) {
	base, err = catalog.Load(cfg.DataFile)
	if err != nil {
		return nil, nil, err
	}
	return base, cfg.ApplyProfile(base), nil
}
