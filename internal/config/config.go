package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Redis               Redis               `mapstructure:",squash"`
	Analytics           Analytics           `mapstructure:",squash"`
	Budget              Budget              `mapstructure:",squash"`
	PromotionStatusSync PromotionStatusSync `mapstructure:",squash"`
	DeductionAgingSync  DeductionAgingSync  `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Analytics struct {
	CacheEnabled            bool          `mapstructure:"analytics_cache_enabled"`
	CacheTTL                time.Duration `mapstructure:"analytics_cache_ttl"`
	TopPromotionsLimit      int           `mapstructure:"analytics_top_promotions_limit"`
	PriorityDeductionsLimit int           `mapstructure:"analytics_priority_deductions_limit"`
}

type Budget struct {
	AllocationMaxRetries int           `mapstructure:"budget_allocation_max_retries"`
	SessionTTL           time.Duration `mapstructure:"budget_session_ttl"`
}

type PromotionStatusSync struct {
	CronSchedule string `mapstructure:"promotion_status_sync_cron"`
	Enabled      bool   `mapstructure:"promotion_status_sync_enabled"`
}

type DeductionAgingSync struct {
	CronSchedule string `mapstructure:"deduction_aging_sync_cron"`
	Enabled      bool   `mapstructure:"deduction_aging_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tpm?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("ANALYTICS_CACHE_ENABLED", true)
	viper.SetDefault("ANALYTICS_CACHE_TTL", "5m")
	viper.SetDefault("ANALYTICS_TOP_PROMOTIONS_LIMIT", 5)
	viper.SetDefault("ANALYTICS_PRIORITY_DEDUCTIONS_LIMIT", 10)

	viper.SetDefault("BUDGET_ALLOCATION_MAX_RETRIES", 3)
	viper.SetDefault("BUDGET_SESSION_TTL", "15m") // Tempo para o usuário decidir entre add/replace

	viper.SetDefault("PROMOTION_STATUS_SYNC_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("PROMOTION_STATUS_SYNC_ENABLED", false)

	viper.SetDefault("DEDUCTION_AGING_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DEDUCTION_AGING_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Budget.AllocationMaxRetries <= 0 {
		config.Budget.AllocationMaxRetries = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
