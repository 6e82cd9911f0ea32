package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicscribe/scribe-api/internal/handler"
	labelHandler "github.com/clinicscribe/scribe-api/internal/handler/label"
	recordHandler "github.com/clinicscribe/scribe-api/internal/handler/record"
	sessionHandler "github.com/clinicscribe/scribe-api/internal/handler/session"
	"github.com/clinicscribe/scribe-api/internal/middleware"
)

type Router struct {
	engine  *gin.Engine
	metrics *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func initRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name: "scribe_request_duration_seconds",
			Help: "HTTP request latency.",
		}, []string{"method", "path", "status"}),
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scribe_requests_total",
			Help: "HTTP requests served.",
		}, []string{"method", "path", "status"}),
		errorTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scribe_request_errors_total",
			Help: "HTTP requests that failed with a server error.",
		}, []string{"method", "path"}),
	}
}

func NewRouter(
	sessionH *sessionHandler.Handler,
	recordH *recordHandler.Handler,
	labelH *labelHandler.Handler,
	healthH *handler.HealthHandler,
	limiter *middleware.RateLimiter,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidators()
	engine := gin.New()

	r := &Router{
		engine:  engine,
		metrics: initRouterMetrics(),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	api := engine.Group("/api/v1")
	sessionH.RegisterRoutes(api, limiter.RateLimit())
	recordH.RegisterRoutes(api)
	labelH.RegisterRoutes(api)

	engine.GET("/healthz", healthH.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(method, path, status).
			Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(method, path, status).Inc()
		if c.Writer.Status() >= 500 {
			r.metrics.errorTotal.WithLabelValues(method, path).Inc()
		}
	}
}
