package main

import (
	"os"

	"github.com/JulioGEP/ERP-GEP-sub004/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
