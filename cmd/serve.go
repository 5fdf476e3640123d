package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"

	"roster/internal/config"
	"roster/internal/handler"
	"roster/internal/service"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the roster web application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.dataFile == "" {
		opts.dataFile = cfg.DataFile
	}

	roster, err := opts.openStore()
	if err != nil {
		return err
	}
	log.Printf("Loaded %d students from %s", roster.Len(), roster.Path())

	// Initialize services
	studentService := service.NewStudentService(roster)
	uploadService := service.NewUploadService(roster)

	// Initialize handlers
	flash := handler.NewFlasher([]byte(cfg.SessionKey))
	r := handler.NewRouter(handler.Handlers{
		Students: handler.NewStudentHandler(studentService, flash),
		API:      handler.NewAPIHandler(studentService),
		Upload:   handler.NewUploadHandler(uploadService, flash),
		Imports:  handler.NewImportHandler(uploadService),
	}, config.MaxUploadBytes)

	var h http.Handler = handlers.CORS(handlers.AllowedOrigins(cfg.AllowedOrigins))(r)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Println("Server running on", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, h)
}
