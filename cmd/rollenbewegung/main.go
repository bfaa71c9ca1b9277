package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/config"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/logger"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/server"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/util"
)

var (
	port    = flag.Int("port", 0, "Server-Port (überschreibt config.toml)")
	devMode = flag.Bool("dev", false, "Entwicklungsmodus")
	dataDir = flag.String("dataDir", "", "Datenverzeichnis (überschreibt config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Rollenbewegung - Produktivitätsanalyse")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Konfiguration konnte nicht geladen werden, Standardwerte werden verwendet: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("Datenverzeichnis konnte nicht angelegt werden: %v", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Server.DevMode, DataDir: dir}); err != nil {
		log.Fatalf("Logger konnte nicht initialisiert werden: %v", err)
	}

	srv := server.NewServer(cfg)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Server läuft auf http://localhost:%d\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Server konnte nicht gestartet werden: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		go func() {
			time.Sleep(300 * time.Millisecond)
			url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
			if err := util.OpenBrowserWithFallback(url); err != nil {
				logger.Warn("Browser konnte nicht geöffnet werden", "error", err)
			}
		}()
	}

	fmt.Println("\nZum Beenden Strg+C drücken...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nServer wird beendet...")
}
