package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

var (
	buildVersion = "0.0.1-src"
	buildDate    string
	buildCommit  string
)

func main() {
	if buildCommit == "" {
		buildCommit = versioninfo.Short()
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(buildInfo)
	root.SetArgs(os.Args[1:])
	root.SetOut(os.Stdout)

	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		cancel()
		os.Exit(1)
	}
}
