// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package main

import (
	"fmt"

	"github.com/nirmalsolanki-business/ghost-console/internal/client"
	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("ghost-console")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
