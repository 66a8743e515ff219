package main

import (
	"log"

	"shopquery/internal/catalog"
	"shopquery/internal/config"
	"shopquery/internal/llm"
	"shopquery/internal/logger"
	"shopquery/internal/query"
	"shopquery/internal/router"
	"shopquery/internal/search"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	appLog := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	appLog.Info("configuration loaded", map[string]interface{}{
		"env":     cfg.App.Environment,
		"model":   cfg.Ollama.Model,
		"catalog": cfg.Catalog.URL,
	})

	// ───────────────────────── CLIENTS ─────────────────────────
	// Outbound HTTP clients are process-wide: created once here,
	// reused across requests.
	llmClient := llm.NewOllamaClient(
		cfg.Ollama.URL,
		cfg.Ollama.Model,
		cfg.Ollama.Timeout,
		appLog,
	)
	catalogClient := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout)

	// ───────────────────────── PIPELINE ─────────────────────────
	interpreter := query.NewInterpreter(llmClient, cfg.Ollama.Timeout, appLog)
	searchService := search.NewService(interpreter, catalogClient, appLog)
	searchHandler := search.NewHandler(searchService)

	// ───────────────────────── START ─────────────────────────
	r := router.New(cfg, appLog, searchHandler)

	appLog.Info("server starting", map[string]interface{}{"addr": cfg.App.Addr()})
	if err := r.Run(cfg.App.Addr()); err != nil {
		log.Fatal("server failed: ", err)
	}
}
