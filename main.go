package main

import (
	"os"

	"github.com/gopak/sift/cmd"
	"github.com/gopak/sift/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error(err.Error())
		os.Exit(1)
	}
}
