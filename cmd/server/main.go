package main

import (
	"log/slog"
	"os"

	"hirequality/internal/app/server"
)

func main() {
	if err := server.Run(); err != nil {
		slog.Error("hire quality server stopped", "err", err)
		os.Exit(1)
	}
}
