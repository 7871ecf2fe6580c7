package router

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gennaskitchen/service-api-go/internal/account"
	accountrepo "github.com/gennaskitchen/service-api-go/internal/account/repo"
	"github.com/gennaskitchen/service-api-go/internal/cart"
	cartrepo "github.com/gennaskitchen/service-api-go/internal/cart/repo"
	"github.com/gennaskitchen/service-api-go/internal/catalog"
	catalogrepo "github.com/gennaskitchen/service-api-go/internal/catalog/repo"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware logs each request at debug level with a per-request
// snowflake ID so concurrent requests can be told apart in the log stream.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := utilities.NewSnowflakeID()
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
			)
		})
	}
}

// CORSMiddleware allows browser clients from any origin, mirroring the
// permissive policy of the original frontend setup.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RegisterRoutes wires repositories, services and handlers onto a standard
// library http.ServeMux. One route per store operation; no routing framework.
func RegisterRoutes(logger *zap.SugaredLogger, db *sqlx.DB) http.Handler {
	mux := http.NewServeMux()

	userRepo := accountrepo.NewUserRepo(db)
	productRepo := catalogrepo.NewProductRepo(db)
	lineRepo := cartrepo.NewCartRepo(db)

	accountSvc := account.NewService(userRepo, nil)
	catalogSvc := catalog.NewService(productRepo)
	cartSvc := cart.NewService(lineRepo, accountSvc, catalogSvc)

	accountHandler := account.NewHandler(accountSvc, logger)
	catalogHandler := catalog.NewHandler(catalogSvc, logger)
	cartHandler := cart.NewHandler(cartSvc, logger)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		utilities.RespondOK(w, http.StatusOK, "Welcome to Gennas Kitchen", nil)
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /register", accountHandler.Register)
	mux.HandleFunc("POST /login", accountHandler.Login)

	mux.HandleFunc("GET /products", catalogHandler.List)
	mux.HandleFunc("POST /products", catalogHandler.Add)
	mux.HandleFunc("GET /products/{id}", catalogHandler.Get)
	mux.HandleFunc("PUT /products/{id}", catalogHandler.Update)
	mux.HandleFunc("DELETE /products/{id}", catalogHandler.Delete)

	mux.HandleFunc("POST /cart", cartHandler.Add)
	mux.HandleFunc("GET /cart/{userId}", cartHandler.List)
	mux.HandleFunc("PATCH /cart/{userId}/{productId}", cartHandler.Update)
	mux.HandleFunc("DELETE /cart/{userId}/{productId}", cartHandler.Remove)

	return LoggingMiddleware(logger)(CORSMiddleware()(mux))
}
