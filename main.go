package main

import (
	"os"

	"github.com/anirbanax014/Interview-PrepBot-AI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
