package main

import (
	"os"

	"github.com/ds124wfegd/image-service/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imagesvc",
	Short: "Image upload and transformation service",
}

func Execute() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("failed to execute command")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.GetEnv("IMAGESVC_CONFIG", ""),
		"path to config file (default ./config/config.yaml)")
}

func loadConfig() (*config.Config, error) {
	viperInstance, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return config.ParseConfig(viperInstance)
}
