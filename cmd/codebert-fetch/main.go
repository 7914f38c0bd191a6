// Package main downloads model artifacts ahead of serving, so deploys can
// bake models into an image or shared volume instead of fetching them at
// startup.
//
// Flags default to the same environment variables the server reads, so
// a bare "codebert-fetch" prepares exactly what "codebert-server" will
// load.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/codementor/codebert-server/internal/hub"
	"github.com/codementor/codebert-server/internal/inference"
	"github.com/codementor/codebert-server/internal/logger"
)

func main() {
	engineCfg := inference.NewConfig()

	model := flag.String("model", engineCfg.ModelName, "model to fetch, in owner/name form")
	dir := flag.String("dir", engineCfg.ModelPath, "root directory for model artifacts")
	onnx := flag.String("onnx", engineCfg.OnnxFilename, "graph file to fetch, relative to the model directory")
	flag.Parse()

	log := logger.NewLoggerClient(logger.NewConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := hub.NewClient(hub.NewConfig(), log)
	if err := client.Fetch(ctx, *model, *dir, hub.Artifacts(*onnx)); err != nil {
		log.Fatal("model fetch failed", err, map[string]interface{}{
			"model": *model,
		})
	}

	log.Info("model artifacts ready", nil, map[string]interface{}{
		"model": *model,
		"dir":   *dir,
	})
}
