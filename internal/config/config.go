package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// MinSecretKeyLength é o tamanho mínimo da chave HS256 dos tokens de administrador
const MinSecretKeyLength = 32

// Valores de exemplo que já circularam em .env públicos e nunca podem assinar tokens
var placeholderSecrets = map[string]struct{}{
	"your_secret_key": {},
	"secret":          {},
	"changeme":        {},
}

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ExportBackup ExportBackup `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"database_dsn"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Auth guarda a credencial do administrador. Apenas o hash bcrypt é configurado,
// nunca a senha em texto puro.
type Auth struct {
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

type ExportBackup struct {
	CronSchedule string `mapstructure:"export_backup_cron"`
	Directory    string `mapstructure:"export_backup_dir"`
	Enabled      bool   `mapstructure:"export_backup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/primes?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_DSN", "")

	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("EXPORT_BACKUP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("EXPORT_BACKUP_DIR", "backups")
	viper.SetDefault("EXPORT_BACKUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize monta o DSN e valida combinações que o viper não consegue checar
func (c *Config) finalize() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			c.Database.DSN = fmt.Sprintf(
				"%s://%s:%s@%s",
				c.Database.Driver,
				c.Database.User,
				c.Database.Password,
				c.Database.URL,
			)
		}
	case DriverSQLite:
		if c.Database.DSN == "" {
			c.Database.DSN = c.Database.URL
		}
	default:
		return fmt.Errorf("config: driver de banco de dados não suportado: %q", c.Database.Driver)
	}

	if err := c.validateSecretKey(); err != nil {
		return err
	}

	if c.Auth.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_PASSWORD_HASH não configurado: o login de administrador sempre será recusado")
	}

	return nil
}

func (c *Config) validateSecretKey() error {
	key := strings.TrimSpace(c.SecretKey)
	if key == "" {
		return fmt.Errorf("config: SECRET_KEY é obrigatório")
	}
	if _, ok := placeholderSecrets[strings.ToLower(key)]; ok {
		return fmt.Errorf("config: SECRET_KEY usa um valor de exemplo")
	}
	if len(key) < MinSecretKeyLength {
		return fmt.Errorf("config: SECRET_KEY deve ter ao menos %d caracteres", MinSecretKeyLength)
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
