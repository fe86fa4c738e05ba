package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/nhalm/pgxkit"
	"github.com/shopfront/catalog-api/internal/api"
	"github.com/shopfront/catalog-api/internal/auth"
	"github.com/shopfront/catalog-api/internal/repository"
	"github.com/shopfront/catalog-api/internal/search"
	"github.com/shopfront/catalog-api/internal/service"
	"github.com/shopfront/catalog-api/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("HOST", serveCmd.Flags().Lookup("host"))
}

func runServe(_ *cobra.Command, _ []string) error {
	canonlog.SetupGlobalLogger(viper.GetString("LOG_LEVEL"), viper.GetString("LOG_FORMAT"))

	host := viper.GetString("HOST")
	port := viper.GetInt("PORT")
	addr := fmt.Sprintf("%s:%d", host, port)

	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	tokens, err := auth.NewTokenManager(viper.GetString("JWT_SECRET"), viper.GetDuration("JWT_TTL"))
	if err != nil {
		return fmt.Errorf("invalid JWT_SECRET: %w", err)
	}

	ctx := context.Background()
	db := pgxkit.NewDB()
	if err := db.Connect(ctx, withPoolSize(databaseURL, viper.GetInt("DATABASE_MAX_CONNS"))); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Shutdown(ctx) }()

	images, uploadDir, err := newImageStorage(ctx)
	if err != nil {
		return err
	}
	if closer, ok := images.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	queryTimeout := viper.GetDuration("QUERY_TIMEOUT")

	// Repositories
	productRepo := repository.NewProductRepository(db, search.NewBuilder(search.NewPostgresRanker()))
	userRepo := repository.NewUserRepository(db)

	// Services
	productSvc := service.NewProductService(productRepo, images, queryTimeout)
	searchSvc := service.NewSearchService(productRepo, queryTimeout)
	userSvc := service.NewUserService(userRepo, auth.NewPasswordHasher(auth.DefaultBcryptCost), queryTimeout)
	authSvc := service.NewAuthService(userSvc, tokens)

	// Handler
	handler := api.NewHandler(api.Services{
		Products: productSvc,
		Search:   searchSvc,
		Users:    userSvc,
		Auth:     authSvc,
		Tokens:   tokens,
	}, viper.GetString("APP_ENV") != "production")

	routeConfig := api.DefaultRouteConfig()
	if v := viper.GetInt("RATE_LIMIT_READ_RPS"); v > 0 {
		routeConfig.ReadRPS = v
	}
	if v := viper.GetInt("RATE_LIMIT_WRITE_RPS"); v > 0 {
		routeConfig.WriteRPS = v
	}
	if v := viper.GetInt("RATE_LIMIT_AUTH"); v > 0 {
		routeConfig.AuthAttempts = v
	}
	if v := viper.GetInt64("MAX_REQUEST_BODY_BYTES"); v > 0 {
		routeConfig.MaxBodyBytes = v
	}
	routeConfig.AllowedOrigins = api.ParseAllowedOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	routeConfig.UploadDir = uploadDir

	srv := &http.Server{
		Addr:           addr,
		Handler:        handler.RoutesWithConfig(routeConfig),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	go func() {
		fmt.Printf("Server starting on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}

// newImageStorage picks the image backend from STORAGE_TYPE. A GCS setup
// that fails falls back to local disk. The returned directory is non-empty
// when images are served by this process.
func newImageStorage(ctx context.Context) (storage.Storage, string, error) {
	uploadDir := viper.GetString("UPLOAD_DIR")

	if viper.GetString("STORAGE_TYPE") == storage.TypeGCS {
		gcsStore, err := storage.NewGCS(ctx, storage.GCSConfig{
			Bucket:          viper.GetString("GCS_BUCKET"),
			CredentialsFile: viper.GetString("GCS_CREDENTIALS_FILE"),
		})
		if err == nil {
			fmt.Println("Google Cloud Storage initialized")
			return gcsStore, "", nil
		}
		fmt.Fprintf(os.Stderr, "GCS initialization failed, falling back to local storage: %v\n", err)
	}

	local, err := storage.NewLocal(uploadDir, storage.DefaultLocalURLPrefix)
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize local storage: %w", err)
	}
	fmt.Println("Local file storage initialized")
	return local, local.Root(), nil
}

// withPoolSize caps the pgx pool unless the DSN already sets pool_max_conns.
// Requests beyond the cap wait for a free connection.
func withPoolSize(dsn string, maxConns int) string {
	if maxConns <= 0 || strings.Contains(dsn, "pool_max_conns") {
		return dsn
	}

	u, err := url.Parse(dsn)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return dsn + " pool_max_conns=" + strconv.Itoa(maxConns)
	}

	q := u.Query()
	q.Set("pool_max_conns", strconv.Itoa(maxConns))
	u.RawQuery = q.Encode()
	return u.String()
}
