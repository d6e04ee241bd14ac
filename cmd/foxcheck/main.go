// Command foxcheck loads a level together with every prefab, animation
// config and dialogue script it pulls in, and reports what the game would
// reject at startup.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	level := flag.String("level", "foxtrot.json", "level to check")
	verbose := flag.Bool("v", false, "log every file checked")
	flag.Parse()

	lvl := slog.LevelWarn
	if *verbose {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	problems := checkLevel(*level)
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, p)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", *level)
}
