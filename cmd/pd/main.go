package main

import (
	"os"

	"github.com/JiYeong0127/paperdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
