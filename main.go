package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mosaicgames/wordmosaic/config"
	"github.com/mosaicgames/wordmosaic/dictionary"
	"github.com/mosaicgames/wordmosaic/game"
	"github.com/mosaicgames/wordmosaic/shell"
)

var debug = flag.Bool("debug", false, "enable debug logging")

func main() {
	flag.Parse()

	// A missing .env is fine; keys can come from the environment proper.
	godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	provider, cleanup, err := makeProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up dictionary provider")
	}
	if cleanup != nil {
		defer cleanup()
	}
	gateway := dictionary.NewGateway(provider, cfg.LookupTimeout)

	session, err := game.NewSession(cfg, gateway)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start session")
	}

	ctrl, err := shell.NewController(session, gateway)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start shell")
	}
	ctrl.Loop()
}

// makeProvider picks the lookup backend from configuration.
func makeProvider(cfg *config.Config) (dictionary.Lookup, func(), error) {
	switch cfg.DictionaryProvider {
	case "websterapi":
		return dictionary.NewWebsterClient(cfg.WebsterAPIKey, cfg.WebsterEdition), nil, nil
	case "freedict":
		return dictionary.NewFreeDictClient(), nil, nil
	case "sqlite":
		sqldict, err := dictionary.OpenSQLiteDictionary(cfg.WordDBPath)
		if err != nil {
			return nil, nil, err
		}
		if cfg.WordListPath != "" {
			if _, err := sqldict.BuildWordList(cfg.WordListPath); err != nil {
				sqldict.Close()
				return nil, nil, err
			}
		}
		return sqldict, func() { sqldict.Close() }, nil
	}
	log.Fatal().Str("provider", cfg.DictionaryProvider).
		Msg("unknown dictionary provider")
	return nil, nil, nil
}
