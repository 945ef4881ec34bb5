package cmd

/*
Copyright © 2019 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

import (
	"fmt"
	"os"
	"strings"

	"github.com/francois-poidevin/flightnotifier/config"
	defaults "github.com/mcuadros/go-defaults"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "FN"
	defaultConfigFile = "config_flightnotifier.toml"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flightnotifier",
	Short: "Flightnotifier shows the aircraft flying over your home on an AWTRIX display",
	Long: `Flightnotifier polls the flightradar24 feed around a ground location,
	follows the closest aircraft and announces it on an AWTRIX clock while it is overhead.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	log     *logrus.Logger
	cfgFile string
	conf    = &config.Configuration{}
)

func init() {
	log = newLogger()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = new(logrus.TextFormatter)                  //default
	l.Formatter.(*logrus.TextFormatter).DisableColors = true // remove colors
	l.Formatter.(*logrus.TextFormatter).FullTimestamp = true
	l.Level = logrus.InfoLevel
	l.Out = os.Stdout
	return l
}

// initConfig loads defaults, then the config file, then FN_* environment
// variables. A missing config file is only fatal when given explicitly.
func initConfig(cmd *cobra.Command) {
	defaults.SetDefaults(conf)

	for k := range asEnvVariables(conf, "", false) {
		err := viper.BindEnv(strings.ToLower(strings.Replace(k, "_", ".", -1)), envPrefix+"_"+k)
		if err != nil {
			log.WithFields(logrus.Fields{
				"var": envPrefix + "_" + k,
			}).Error("Unable to bind environment variable")
		}
	}

	file, err := homedir.Expand(cfgFile)
	if err != nil {
		log.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Unable to expand config file path")
	}

	_, errStat := os.Stat(file)
	switch {
	case os.IsNotExist(errStat) && cmd.Flags().Changed("config"):
		// If the config file doesn't exists, let's exit
		log.WithFields(logrus.Fields{
			"err": errStat,
		}).Fatal("File doesn't exists")
	case os.IsNotExist(errStat):
		log.WithFields(logrus.Fields{
			"File": file,
		}).Info("No configuration file, using defaults")
	default:
		log.WithFields(logrus.Fields{
			"File": file,
		}).Info("Reading configuration file")

		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Unable to read config")
		}
	}

	if err := viper.Unmarshal(conf); err != nil {
		log.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Unable to parse config")
	}

	level, err := logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		log.WithFields(logrus.Fields{
			"level": conf.Log.Level,
		}).Warn("Unknown log level, keeping info")
		return
	}
	log.SetLevel(level)
}
