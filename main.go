package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/navionguy/amoslist/amostoken"
	"github.com/navionguy/amoslist/cli"
	"github.com/navionguy/amoslist/extensions"
	"github.com/navionguy/amoslist/fileserv"
	"github.com/navionguy/amoslist/logging"
	"github.com/navionguy/amoslist/settings"
	"github.com/rs/zerolog"
)

var (
	configFile = flag.String("config", "", "TOML config file")
	listFile   = flag.String("list", "", "list the tokens of one program and exit")
	listen     = flag.String("listen", "", "listen address, overrides the config")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFile, *listen)
	if err != nil {
		boot := logging.New("amoslist", "info", nil)
		boot.Fatal().Err(err).Msg("bad config")
	}

	log := logging.New("amoslist", cfg.LogLevel, nil)

	names, err := loadNames(cfg.Extensions)
	if err != nil {
		log.Fatal().Err(err).Msg("bad extension table")
	}

	if len(*listFile) > 0 {
		if err := cli.ListFile(os.Stdout, *listFile, names, log); err != nil {
			os.Exit(1)
		}
		return
	}

	serve(cfg, names, log)
}

func serve(cfg settings.Config, names amostoken.ExtensionNamer, log zerolog.Logger) {
	rtr := fileserv.NewRouter(os.DirFS(cfg.Source), names, log)

	log.Info().Str("listen", cfg.Listen).Str("source", cfg.Source).Msg("listening")
	log.Fatal().Err(http.ListenAndServe(cfg.Listen, rtr)).Msg("server stopped")
}

// loadConfig reads the config file if there is one, the
// listen flag wins over the file
func loadConfig(path string, listen string) (settings.Config, error) {
	cfg := settings.Default()

	if len(path) > 0 {
		var err error
		if cfg, err = settings.Load(path); err != nil {
			return cfg, err
		}
	}

	if len(listen) > 0 {
		cfg.Listen = listen
	}
	return cfg, nil
}

// loadNames returns nil when no table was configured so
// extension tokens get listed raw
func loadNames(path string) (amostoken.ExtensionNamer, error) {
	if len(path) == 0 {
		return nil, nil
	}

	tb, err := extensions.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return tb, nil
}
