package main

import (
	"os"

	perusecmder "github.com/perusehq/peruse/cmd/peruse"
)

func main() {
	cmd := perusecmder.NewPeruseCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
