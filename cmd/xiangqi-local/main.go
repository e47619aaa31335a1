package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"xiangqi/internal/config"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 没有图形界面的机器上会失败，不管
}

func loadConfig(path string) config.Config {
	if path == "" {
		found, err := config.FindConfigPath()
		if err != nil {
			log.Printf("[server] %v, using defaults", err)
			return config.Default()
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[server] %v", err)
	}
	log.Printf("[server] config loaded from %s", path)
	return cfg
}

func main() {
	configPath := flag.String("config", "", "path to xiangqi.json (default: search upwards from cwd)")
	addr := flag.String("addr", "", "listen address, overrides config")
	webDir := flag.String("web", "", "directory with index.html / js / svg, overrides config")
	noBrowser := flag.Bool("no-browser", false, "do not open the default browser")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}
	if *noBrowser {
		cfg.OpenBrowser = false
	}

	h := httpserver.NewHandler(cfg)
	done := make(chan struct{})
	go h.Hub().Run(done)

	if idle := cfg.SessionIdle(); idle > 0 {
		go func() {
			ticker := time.NewTicker(idle / 4)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if n := h.Sessions().Prune(idle); n > 0 {
						log.Printf("[server] pruned %d idle games", n)
					}
				}
			}
		}()
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.Router(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	log.Printf("[server] listening on %s, serving static from %s", cfg.Addr, cfg.WebDir)

	if cfg.OpenBrowser {
		// 等监听起来再开浏览器
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := cfg.Addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[server] server error: %v", err)
		}
	}

	close(done)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
		_ = server.Close()
	}
}
