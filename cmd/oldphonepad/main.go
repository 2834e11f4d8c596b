package main

import (
	"flag"
	"fmt"
	"os"

	"oldphonepad/internal/app"

	"go.uber.org/zap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: oldphonepad [file]  (reads stdin when no file is given)")
	}
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}

	input, err := app.Input(flag.Args()) // файл или stdin
	if err != nil {
		logger.Error("reading input", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	ans, err := app.Decode(input)
	if err != nil {
		logger.Error("decode failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	fmt.Println(ans)
}
