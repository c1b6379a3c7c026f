package main

import (
	"os"

	"github.com/programstile/studio/internal/cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetLevel(log.WarnLevel)
	if err := cli.NewCLIApp(os.Stdout).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
