package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"master_ms/internal/config"
	"master_ms/internal/controller"
	"master_ms/internal/middleware"
	"master_ms/internal/repository"
	"master_ms/internal/router"
	"master_ms/internal/service"
	"master_ms/internal/task"
	"master_ms/pkg/cache"
	"master_ms/pkg/database"
	"master_ms/pkg/i18n"
	"master_ms/pkg/microservice"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.AppEnv)
	defer func() { _ = logger.Sync() }()

	loc, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		logger.Fatal("invalid TZ", zap.String("tz", cfg.TZ), zap.Error(err))
	}
	time.Local = loc

	// 2. 初始化数据库
	db := initDatabase(cfg, logger)

	// 3. 初始化依赖
	deps := initDependencies(cfg, db, logger)

	// 4. 启动定时任务
	tasks := initTasks(cfg, deps, logger)

	// 5. 启动服务
	startServer(cfg, deps, tasks, logger)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Cache       cache.Cache
	Limiter     *middleware.CooldownLimiter
	Repos       *Repositories
	Services    *Services
	Controllers router.Controllers
	Router      *microservice.Router
}

// Repositories 仓库集合
type Repositories struct {
	Country   *repository.CountryRepo
	State     *repository.StateRepo
	City      *repository.CityRepo
	Brand     *repository.BrandRepo
	Tax       *repository.TaxRepo
	Division  *repository.DivisionRepo
	ContactUs *repository.ContactUsRepo
	Product   *repository.ProductRepo
	Cart      *repository.CartRepo
	Wishlist  *repository.WishlistRepo
}

// Services 服务集合
type Services struct {
	Country   *service.CountryService
	State     *service.StateService
	City      *service.CityService
	Brand     *service.BrandService
	Tax       *service.TaxService
	Division  *service.DivisionService
	ContactUs *service.ContactUsService
	Cart      *service.CartService
	Wishlist  *service.WishlistService
	Storage   *service.StorageService
}

// ==================== 初始化函数 ====================

func initLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	return logger.Named("master")
}

// initDatabase 连接、注册审计回调、迁移并按需写入初始数据
func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := database.InitDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	if err := middleware.RegisterAuditCallbacks(db); err != nil {
		logger.Fatal("注册审计回调失败", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ini := database.NewInitializer(db, database.InitOptions{Seed: cfg.Database.Seed}, logger)
	if err := ini.Initialize(ctx); err != nil {
		logger.Fatal("数据库初始化失败", zap.Error(err))
	}
	return db
}

// initCache REDIS_URL 为空时使用进程内缓存
func initCache(cfg *config.Config, logger *zap.Logger) cache.Cache {
	if cfg.Redis.URL == "" {
		return cache.NewMemoryCache()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rc, err := cache.NewRedisCache(ctx, cfg.Redis.URL, cfg.Redis.Namespace)
	if err != nil {
		logger.Warn("redis unavailable, falling back to memory cache", zap.Error(err))
		return cache.NewMemoryCache()
	}
	return rc
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *Dependencies {
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenTTL: middleware.DefaultJWTConfig().AccessTokenTTL,
		Issuer:         cfg.JWT.Issuer,
	})

	c := initCache(cfg, logger)
	dropdown := service.NewDropdownCache(c, cfg.DropdownCacheTTL, logger)
	limiter := middleware.GetLimiter()

	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 存储 --------
	storageSvc := initStorageService(cfg, logger)
	products := service.NewProductLookup(cfg.Catalog, repos.Product)

	// -------- 业务服务 --------
	services := &Services{
		Country:   service.NewCountryService(repos.Country, dropdown),
		State:     service.NewStateService(repos.State, repos.Country, dropdown),
		City:      service.NewCityService(repos.City, repos.State, dropdown),
		Brand:     service.NewBrandService(repos.Brand, storageSvc, dropdown, logger),
		Tax:       service.NewTaxService(repos.Tax, storageSvc, limiter, cfg.ImportCooldown, logger),
		Division:  service.NewDivisionService(repos.Division, dropdown),
		ContactUs: service.NewContactUsService(repos.ContactUs),
		Cart:      service.NewCartService(repos.Cart, products),
		Wishlist:  service.NewWishlistService(repos.Wishlist, products),
		Storage:   storageSvc,
	}

	// -------- Controller 层 --------
	controllers := initControllers(services)

	// -------- Pattern 路由 --------
	handler := controller.NewExceptionHandler(i18n.New(cfg.FallbackLang), logger)
	r := microservice.NewRouter(logger, microservice.NewMetrics(nil))
	router.InitPatterns(r, handler, controllers)

	return &Dependencies{
		DB:          db,
		Cache:       c,
		Limiter:     limiter,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		Router:      r,
	}
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Country:   repository.NewCountryRepo(db),
		State:     repository.NewStateRepo(db),
		City:      repository.NewCityRepo(db),
		Brand:     repository.NewBrandRepo(db),
		Tax:       repository.NewTaxRepo(db),
		Division:  repository.NewDivisionRepo(db),
		ContactUs: repository.NewContactUsRepo(db),
		Product:   repository.NewProductRepo(db),
		Cart:      repository.NewCartRepo(db),
		Wishlist:  repository.NewWishlistRepo(db),
	}
}

// initStorageService 初始化存储服务，失败时品牌图片与导入文件不可用
func initStorageService(cfg *config.Config, logger *zap.Logger) *service.StorageService {
	storageSvc, err := service.NewStorageService(cfg.Storage)
	if err != nil {
		logger.Warn("存储服务初始化失败", zap.Error(err))
		return nil
	}
	return storageSvc
}

// initControllers 初始化所有控制器
func initControllers(svc *Services) router.Controllers {
	return router.Controllers{
		Country:   controller.NewCountryController(svc.Country),
		State:     controller.NewStateController(svc.State),
		City:      controller.NewCityController(svc.City),
		Brand:     controller.NewBrandController(svc.Brand),
		Tax:       controller.NewTaxController(svc.Tax),
		Division:  controller.NewDivisionController(svc.Division),
		ContactUs: controller.NewContactUsController(svc.ContactUs),
		Cart:      controller.NewCartController(svc.Cart),
		Wishlist:  controller.NewWishlistController(svc.Wishlist),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(cfg *config.Config, deps *Dependencies, logger *zap.Logger) *task.TaskManager {
	tcfg := task.DefaultConfig()
	if cfg.DropdownRefreshCron != "" {
		tcfg.DropdownSpec = cfg.DropdownRefreshCron
	}

	tm := task.NewTaskManager(&task.TaskManagerDeps{
		DropdownWarmers: map[string]service.DropdownWarmer{
			"country":  deps.Services.Country,
			"state":    deps.Services.State,
			"city":     deps.Services.City,
			"brand":    deps.Services.Brand,
			"division": deps.Services.Division,
		},
	}, tcfg, logger)

	if err := tm.Start(); err != nil {
		logger.Fatal("定时任务启动失败", zap.Error(err))
	}
	return tm
}

// ==================== 服务启动 ====================

// transportServer TCP 与 Kafka 传输的共同行为
type transportServer interface {
	Serve(ctx context.Context) error
	Close() error
}

func newTransport(cfg *config.Config, r *microservice.Router, logger *zap.Logger) (transportServer, string) {
	if cfg.Transport == config.TransportKafka {
		return microservice.NewKafkaServer(microservice.KafkaConfig{
			Brokers:  cfg.Kafka.Brokers,
			GroupID:  cfg.Kafka.GroupID,
			ClientID: cfg.Kafka.ClientID,
		}, r, r.Topics(), logger), "KAFKA"
	}
	return microservice.NewTCPServer(cfg.Addr(), r, logger), "TCP"
}

// startServer 启动消息传输与 HTTP 网关，收到退出信号后优雅关闭
func startServer(cfg *config.Config, deps *Dependencies, tasks *task.TaskManager, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport, name := newTransport(cfg, deps.Router, logger)
	errCh := make(chan error, 2)

	go func() {
		if err := transport.Serve(ctx); err != nil {
			errCh <- fmt.Errorf("%s transport: %w", name, err)
		}
	}()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	uploadDir := ""
	if deps.Services.Storage != nil {
		uploadDir = deps.Services.Storage.LocalRoot()
	}
	srv := &http.Server{
		Addr: ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: router.SetupGateway(router.GatewayOptions{
			Dispatcher: deps.Router,
			DB:         deps.DB,
			Logger:     logger,
			Limiter:    deps.Limiter,
			Cooldowns: map[string]time.Duration{
				service.ImportTaxAction: cfg.ImportCooldown,
			},
			UploadDir: uploadDir,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http gateway: %w", err)
		}
	}()

	logger.Info(fmt.Sprintf("Master microservice is listening at %s Port: %d Timezone: %s", name, cfg.Port, cfg.TZ),
		zap.Int("http_port", cfg.HTTPPort),
		zap.Int("patterns", len(deps.Router.Patterns())),
	)

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("正在关闭服务...", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("服务异常退出", zap.Error(err))
	}

	// 优雅关闭，最多等待 30 秒
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()
	if err := transport.Close(); err != nil {
		logger.Warn("关闭消息传输失败", zap.Error(err))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("网关强制关闭", zap.Error(err))
	}
	tasks.Stop(10 * time.Second)

	if rc, ok := deps.Cache.(*cache.RedisCache); ok {
		_ = rc.Close()
	}
	if sqlDB, err := deps.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("服务已退出")
}
