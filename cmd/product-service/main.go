package main

import (
	"os"

	"github.com/deppfellow/product-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
