package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrMissingSupabaseConfig = errors.New("configuração do Supabase ausente (SUPABASE_URL / SUPABASE_ANON_KEY)")

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Supabase     Supabase     `mapstructure:",squash"`
	Leo          Leo          `mapstructure:",squash"`
	Demo         Demo         `mapstructure:",squash"`
	Snapshots    Snapshots    `mapstructure:",squash"`
	SessionSweep SessionSweep `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// IsDevelopment indica ambiente de desenvolvimento; o modo demo só existe nele.
func (a App) IsDevelopment() bool {
	env := strings.ToLower(a.Env)
	return env == "" || env == "development" || env == "dev"
}

type Supabase struct {
	URL       string `mapstructure:"supabase_url"`
	AnonKey   string `mapstructure:"supabase_anon_key"`
	JWTSecret string `mapstructure:"supabase_jwt_secret"`
}

// FunctionURL monta a url de uma edge function.
func (s Supabase) FunctionURL(name string) (string, error) {
	if strings.TrimSpace(s.URL) == "" || strings.TrimSpace(s.AnonKey) == "" {
		return "", ErrMissingSupabaseConfig
	}
	return fmt.Sprintf("%s/functions/v1/%s", strings.TrimRight(s.URL, "/"), name), nil
}

type Leo struct {
	FunctionV1  string        `mapstructure:"leo_function_v1"`
	FunctionV2  string        `mapstructure:"leo_function_v2"`
	HTTPTimeout time.Duration `mapstructure:"leo_http_timeout"`
	Diagnostics bool          `mapstructure:"leo_diagnostics"`
}

type Demo struct {
	Enabled bool `mapstructure:"demo_mode_enabled"`
}

type Snapshots struct {
	ListLimit int `mapstructure:"snapshot_list_limit"`
}

type SessionSweep struct {
	CronSchedule string        `mapstructure:"session_sweep_cron"`
	Enabled      bool          `mapstructure:"session_sweep_enabled"`
	MaxIdle      time.Duration `mapstructure:"session_max_idle"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:54322/postgres?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_ANON_KEY", "")
	viper.SetDefault("SUPABASE_JWT_SECRET", "")

	viper.SetDefault("LEO_FUNCTION_V1", "ask-leo-v1")
	viper.SetDefault("LEO_FUNCTION_V2", "ask_leo_v2")
	viper.SetDefault("LEO_HTTP_TIMEOUT", "30s")
	viper.SetDefault("LEO_DIAGNOSTICS", false)

	viper.SetDefault("DEMO_MODE_ENABLED", false)
	viper.SetDefault("SNAPSHOT_LIST_LIMIT", 50)

	viper.SetDefault("SESSION_SWEEP_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)
	viper.SetDefault("SESSION_MAX_IDLE", "30m")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8081,http://localhost:19006")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	// Modo demo é só de desenvolvimento
	if config.Demo.Enabled && !config.App.IsDevelopment() {
		logrus.Warn("config: DEMO_MODE_ENABLED ignorado fora de desenvolvimento")
		config.Demo.Enabled = false
	}

	if config.Snapshots.ListLimit <= 0 {
		config.Snapshots.ListLimit = 50
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

// Validate verifica o que é obrigatório para subir a API.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Supabase.JWTSecret) == "" {
		return errors.New("SUPABASE_JWT_SECRET é obrigatório")
	}
	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
