package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/vanshika/insuradmin/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
	}

	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, newLogger: logging.New}
	if err := newRootCmd(a).Execute(); err != nil {
		a.log().Error("insuradmin failed", "error", err)
		os.Exit(1)
	}
}
