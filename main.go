package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"lootvault/internal/catalog"
	"lootvault/internal/demo"
)

func main() {
	catalogPath := flag.String("catalog", "", "YAML scenario catalog (built-in scenario when empty)")
	flag.Parse()

	cat := catalog.Default()
	if *catalogPath != "" {
		var err error
		cat, err = catalog.Load(*catalogPath)
		if err != nil {
			fail(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fail(err)
	}
	if err := screen.Init(); err != nil {
		fail(err)
	}

	sess, err := demo.NewSession(screen, cat)
	if err != nil {
		screen.Fini()
		fail(err)
	}
	sess.Run()
	screen.Fini()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
