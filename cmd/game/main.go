package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/highscore"
	"github.com/tomz197/starfighter/internal/loop"
	"golang.org/x/term"
)

const appName = "starfighter"

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	scores, err := highscore.Open(appName)
	if err != nil {
		// Degraded store still works; scores just won't survive.
		fmt.Fprintf(os.Stderr, "score storage unavailable: %v\r\n", err)
	}

	presets, err := config.PresetsFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "preset override ignored: %v\r\n", err)
	}

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		Scores:  scores,
		Presets: presets,
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
