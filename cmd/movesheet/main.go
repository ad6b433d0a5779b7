package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chess_analysis/internal/bootstrap"
	errs "chess_analysis/internal/errors"
	"chess_analysis/internal/repository"
	"chess_analysis/internal/usecase/movesheet"
)

func main() {
	output := flag.String("o", "movesheet.pdf", "output PDF path")
	envFile := flag.String("env", ".env", "config file")
	flag.Parse()

	logger := zap.NewNop().Sugar()

	cfg, err := bootstrap.Setup(*envFile)
	if err != nil {
		fmt.Println("Failed to setup configuration:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	storage, closeStorage, err := repository.OpenStateStorage(ctx, cfg, logger)
	if err != nil {
		fmt.Println("Failed to open state storage:", err)
		os.Exit(1)
	}
	defer closeStorage(ctx)

	state, err := storage.LoadState(ctx)
	if errors.Is(err, errs.ErrStateNotFound) {
		fmt.Println("No saved state under key", cfg.StateKey)
		return
	} else if err != nil {
		fmt.Println("Failed to load state:", err)
		os.Exit(1)
	}

	if err := movesheet.WriteFile(state, *output); err != nil {
		fmt.Println("Failed to create PDF:", err)
		os.Exit(1)
	}

	fmt.Println("PDF created:", *output)
}
