package main

import (
	"os"

	"github.com/avazquez/taskline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
