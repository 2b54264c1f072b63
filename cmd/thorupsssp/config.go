package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "THORUPSSSP"
	defaultConfigName = ".thorupsssp"
)

var (
	cfgFile  string
	logLevel string
)

// initConfig wires viper to read a config file and matching environment
// variables, binding every persistent flag of the root command that was
// not set explicitly on the command line to whatever value viper found.
// Subcommand flags are not bound.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigName(defaultConfigName)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfgErr := v.ReadInConfig()

	bindFlags(rootCmd, v)
	initLogger()

	if cfgErr != nil {
		if _, ok := cfgErr.(viper.ConfigFileNotFoundError); !ok {
			log.Debugf("thorupsssp: config file error: %v", cfgErr)
		}
	}
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: false})
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))

		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.PersistentFlags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default $HOME/%s)", defaultConfigName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warning, error")
}
