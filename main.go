package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-joias/app/cmd"
	"github.com/Rakhulsr/go-joias/app/configs"
	"github.com/Rakhulsr/go-joias/app/routes"
	"gorm.io/gorm"
)

func serve(ctx context.Context, db *gorm.DB) error {
	router := routes.NewRouter(db, routes.OptionsFromEnv(configs.LoadENV))

	server := &http.Server{
		Addr:              configs.LoadENV.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serve: server starting on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("serve: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewCli(serve).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
