// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stock-agent/asdata/provider"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asdata",
	Short: "asdata bridges China A-share market data into the stock-agent pipeline",
	Long: `asdata is a command line utility that fetches fundamentals, price
history, and news for China A-share listed companies and normalizes them into
the flat JSON records the stock-agent analysis pipeline ingests.

Vendor endpoints disagree on naming and schema, and both drift over time.
asdata absorbs that drift: every metric is resolved through a cascade of
sources (financial statements, the live market snapshot, a direct quote
lookup) and the record is always emitted, with unresolved fields carrying a 0
sentinel and failures reduced to an advisory error string.

Commands read a single JSON request document from stdin and write a single
JSON document to stdout; logs go to stderr so output stays machine-readable.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = log.With().Str("RunID", uuid.NewString()[:8]).Logger()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.asdata.toml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".asdata" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".asdata")
	}

	viper.SetDefault("eastmoney.datacenter_url", provider.DefaultDatacenterURL)
	viper.SetDefault("eastmoney.push_url", provider.DefaultPushURL)
	viper.SetDefault("eastmoney.push_his_url", provider.DefaultPushHisURL)
	viper.SetDefault("eastmoney.search_url", provider.DefaultSearchURL)
	viper.SetDefault("eastmoney.rate_limit", provider.DefaultRateLimit)
	viper.SetDefault("eastmoney.timeout_seconds", provider.DefaultTimeoutSeconds)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
