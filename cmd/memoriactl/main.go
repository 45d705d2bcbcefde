package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/memoria/internal/ctl"
)

func main() {
	if err := ctl.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
