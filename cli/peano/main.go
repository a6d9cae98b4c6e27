package main

import (
	"os"

	peanocmder "github.com/peanoworks/peano/cmd/peano"
)

func main() {
	cmd := peanocmder.NewPeanoCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
