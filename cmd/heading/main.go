package main

import (
	"os"

	"github.com/airplanedev/heading/pkg/cli"
	"github.com/airplanedev/heading/pkg/cmd/root"
	"github.com/airplanedev/heading/pkg/trap"
)

func main() {
	var cfg = &cli.Config{}
	var cmd = root.New(cfg)

	if err := root.Execute(trap.Context(), cmd); err != nil {
		os.Exit(1)
	}
}
