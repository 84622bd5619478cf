package main

import (
	"fmt"
	"os"

	"github.com/chrysplusplus/albumtag/internal/config"
	"github.com/chrysplusplus/albumtag/internal/tui"
)

func main() {
	path, err := config.DefaultPath()
	settings := config.DefaultSettings()
	if err == nil {
		if loaded, err := config.Load(path); err == nil {
			settings = loaded
		}
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
