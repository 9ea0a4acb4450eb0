package main

import (
	"fmt"
	"os"

	"github.com/minikeyz/french-tax-system/internal/config"
)

func main() {
	rt, err := config.LoadRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := newRootCmd(rt).Execute(); err != nil {
		os.Exit(1)
	}
}
