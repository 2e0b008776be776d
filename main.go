package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clubspot/internal/bot"
	"clubspot/internal/club"
	"clubspot/internal/config"
	"clubspot/internal/prefs"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clubspot",
		Short: "Discord bot for formation-shaped club spot boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("clubspot exited with an error")
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().String("discord-token", "", "Discord bot token (overrides env)")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite path for the preference store")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Int("move-ttl-minutes", defaults.GetInt("move.ttl_minutes"), "Minutes before a half-finished move expires")

	bindFlag(cmd, "discord.token", "discord-token")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "move.ttl_minutes", "move-ttl-minutes")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func run() error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(appConfig.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	store, err := prefs.Open(appConfig.DatabasePath)
	if err != nil {
		return err
	}

	repo := club.NewRepository()
	clubspot := bot.New(appConfig.DiscordToken, repo, store, appConfig.MoveTTL)

	log.Info().Msg("starting clubspot")
	return clubspot.Run()
}
