package cmd

import (
	"log"

	"github.com/rgarhwal/intern-advisor/internal/engine"
	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/model"
	"github.com/rgarhwal/intern-advisor/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "intern-advisor"
)

type Config struct {
	Model   model.Config   `mapstructure:"model"`
	Engine  engine.Config  `mapstructure:"engine"`
	Server  server.Config  `mapstructure:"server"`
	History *HistoryConfig `mapstructure:"history"`
}

type HistoryConfig struct {
	Backend string               `mapstructure:"backend"`
	Redis   *history.RedisConfig `mapstructure:"redis"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "intern-advisor ranks internship candidates and answers questions about the internship scheme",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("model.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is intern-advisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// A missing default config file is fine, every setting has a default.
	// An explicitly requested file must parse.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
