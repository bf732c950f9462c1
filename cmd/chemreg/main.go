// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chemreg CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chemreg/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "chemreg/0.1"

// contactEmail is loaded from .secrets/contact-email at startup; empty
// when absent.
var contactEmail string

// userAgent returns the User-Agent sent to PubChem and Wikipedia,
// including the operator's contact address when one is configured.
func userAgent() string {
	if contactEmail == "" {
		return defaultUserAgent
	}
	return fmt.Sprintf("%s (mailto:%s)", defaultUserAgent, contactEmail)
}

// rootCmd is the base command for the chemreg CLI.
var rootCmd = &cobra.Command{
	Use:   "chemreg",
	Short: "Resolve chemical substance names to CAS numbers and synonyms",
	Long: `chemreg resolves chemical substance names to CAS registry numbers and
synonym lists. The PubChem PUG REST API is queried first; names PubChem
cannot identify fall back to the infobox of the matching Wikipedia
article. Results are flattened into one row per (substance, synonym)
pair and written as CSV.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		contactEmail = secrets.ContactEmail(".secrets/")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chemreg.yaml or ~/.config/chemreg/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chemreg")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chemreg"))
		}
	}

	viper.SetEnvPrefix("CHEMREG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
