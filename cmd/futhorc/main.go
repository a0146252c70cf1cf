package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/crackalamoo/futhorc/internal/logger"
	"github.com/crackalamoo/futhorc/internal/runic"
	"github.com/crackalamoo/futhorc/internal/tui"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("futhorc")

	var (
		interactive = fs.BoolLong("interactive", "run the interactive terminal translator")
		text        = fs.StringLong("text", "", "translate this text and exit")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("FUTHORC")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	logger.New()

	translator, err := runic.New()
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	if *interactive {
		return tui.Run(translator)
	}

	if *text != "" {
		fmt.Println(translator.Translate(*text))
		return nil
	}

	// Default mode: translate stdin line by line.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Println()
			continue
		}
		fmt.Println(translator.Translate(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
