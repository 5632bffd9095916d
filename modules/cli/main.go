package cli

import (
	"github.com/lkarlslund/aclhound/modules/ui"
	"github.com/lkarlslund/aclhound/modules/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	Root = &cobra.Command{
		Use:              "aclhound",
		Short:            version.VersionStringShort(),
		SilenceErrors:    true,
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	loglevel   = Root.PersistentFlags().String("loglevel", "info", "Console log level")
	configfile = Root.PersistentFlags().String("config", "", "YAML configuration file")

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show aclhound version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Info().Msg(version.ProgramVersionShort())
			return nil
		},
	}
)

func bindFlags(cmd *cobra.Command) {
	// Apply viper config values to flags that were not set on the command line
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			f.Value.Set(viper.GetString(f.Name))
		}
	})
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			f.Value.Set(viper.GetString(f.Name))
		}
	})
	for _, subCommand := range cmd.Commands() {
		bindFlags(subCommand)
	}
}

func loadConfiguration(cmd *cobra.Command) {
	viper.SetEnvPrefix("ACLHOUND")
	viper.AutomaticEnv()

	if *configfile != "" {
		viper.SetConfigFile(*configfile)
		if err := viper.ReadInConfig(); err == nil {
			ui.Info().Msgf("Using configuration file: %v", viper.ConfigFileUsed())
		} else {
			ui.Warn().Msgf("No settings loaded from %v: %v", *configfile, err.Error())
		}
	}

	bindFlags(cmd)
}

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(Root)
	})

	Root.AddCommand(versionCmd)
	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return ui.SetLoglevelString(*loglevel)
	}
}

func Run() error {
	return Root.Execute()
}
