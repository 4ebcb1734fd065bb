package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"nexusbot/internal/bootstrap"
	httptransport "nexusbot/internal/transport/http"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close resources failed: %v", err)
		}
	}()

	router := httptransport.NewRouter(app)
	server := &http.Server{
		Addr:              app.Config.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		fmt.Printf("\n❌ Could not start server on %s\n", server.Addr)
		fmt.Printf("   %v\n", err)
		fmt.Print("   Try changing app.port in configs/config.toml or APP_PORT\n\n")
		os.Exit(1)
	}

	url := "http://" + server.Addr
	printBanner(app.Config.LLM.Model, url)

	if app.Config.App.OpenBrowser {
		time.AfterFunc(800*time.Millisecond, func() {
			if err := openBrowser(url); err != nil {
				app.Logger.Warn("open browser failed", "error", err)
			}
		})
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	waitForShutdown(server)
}

func printBanner(model, url string) {
	fmt.Println()
	fmt.Println("  ╔══════════════════════════════════════════════╗")
	fmt.Println("  ║       Nexus Enterprise Intelligence Bot       ║")
	fmt.Println("  ╚══════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  ⚡  Model   :  %s\n", model)
	fmt.Printf("  🌐  Running :  %s\n", url)
	fmt.Println("  🔑  Get key :  https://openrouter.ai/keys (free)")
	fmt.Println()
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n\n  Shutting down Nexus… goodbye.")
	fmt.Println()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	}
}

// openBrowser launches the default browser for the given URL. Best effort,
// the server runs fine without it.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
