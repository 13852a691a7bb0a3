package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/randgen-voter/internal/cli"
	"github.com/MKhiriev/randgen-voter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	code := cli.Execute(ctx, os.Args[1:], cli.Deps{Version: buildInfo.String()})

	stop()
	os.Exit(code)
}
