package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/drawdeck/drawdeck/internal/auth"
	"github.com/drawdeck/drawdeck/internal/config"
	"github.com/drawdeck/drawdeck/internal/hub"
	mw "github.com/drawdeck/drawdeck/internal/middleware"
	"github.com/drawdeck/drawdeck/internal/sheet"
	"github.com/drawdeck/drawdeck/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Init(ctx); err != nil {
		slog.Error("init schema", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(st, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	events := hub.NewHub()
	go events.Run()

	sheetService := sheet.NewService(st)
	sheetHandler := sheet.NewHandler(sheetService, events)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/drawings", sheetHandler.List).Methods("GET")
	api.HandleFunc("/drawings", sheetHandler.Create).Methods("POST")
	api.HandleFunc("/drawings/{drawingId}", sheetHandler.Get).Methods("GET")
	api.HandleFunc("/drawings/{drawingId}", sheetHandler.Rename).Methods("PUT")
	api.HandleFunc("/drawings/{drawingId}", sheetHandler.Delete).Methods("DELETE")
	api.HandleFunc("/drawings/{drawingId}/document", sheetHandler.GetDocument).Methods("GET")
	api.HandleFunc("/drawings/{drawingId}/document", sheetHandler.SaveDocument).Methods("PUT")
	api.HandleFunc("/drawings/{drawingId}/export", sheetHandler.Export).Methods("GET")

	// WebSocket event feed
	r.HandleFunc("/ws/drawing/{drawingId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, events, authService, sheetService)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, events *hub.Hub, authSvc *auth.Service, sheets *sheet.Service) {
	drawingID := mux.Vars(r)["drawingId"]

	// Auth via query param; the browser websocket API cannot set headers.
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	userID, err := authSvc.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := sheets.Get(r.Context(), drawingID, userID); err != nil {
		http.Error(w, "drawing not accessible", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:5173", "localhost:3000"},
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := hub.NewClient(events, conn, userID, drawingID, clientID)

	events.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
