package main

import (
	"os"

	"github.com/MKhiriev/llm-secrets/internal/cli"
	"github.com/MKhiriev/llm-secrets/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("llmsecrets")

	cli.SetBuildInfo(buildVersion, buildDate, buildCommit)
	if err := cli.Execute(log); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
