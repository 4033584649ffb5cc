package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/safety-rules-config/internal/config"
	"github.com/MKhiriev/safety-rules-config/internal/host"
	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/internal/netaddr"
	"github.com/MKhiriev/safety-rules-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	bootLog := logger.NewLogger(config.DefaultRole)
	hostCfg, err := config.GetHostConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := bootLog.WithContext(context.Background())
	cfg, err := config.GetSafetyRulesConfig(ctx, hostCfg)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error loading safety rules config")
	}

	log, closer, err := logger.New(hostCfg.Role, cfg.Logger, os.Stdout)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}

	opts := host.Options{Resolve: hostCfg.Resolve}
	if seed, ok, err := hostCfg.Seed(); err != nil {
		log.Fatal().Err(err).Msg("error decoding test seed")
	} else if ok {
		opts.Seed = &seed
	}
	if author, ok, err := hostCfg.Author(); err != nil {
		log.Fatal().Err(err).Msg("error decoding test author")
	} else if ok {
		opts.Author = &author
	}

	app := host.NewApp(cfg, opts, netaddr.DefaultResolver, log)
	summary, err := app.Boot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("safety rules boot failed")
		closer.Close()
		os.Exit(1)
	}

	log.Debug().Any("summary", summary).Msg("boot summary")
	closer.Close()
}

func printBuildInfo(info models.AppBuildInfo) {
	buildVersion, buildDate, buildCommit := info.BuildVersion(), info.BuildDate(), info.BuildCommit()

	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
