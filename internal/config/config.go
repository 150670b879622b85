package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App                  `mapstructure:",squash"`
	Server    Server               `mapstructure:",squash"`
	ReportAPI ReportAPI            `mapstructure:",squash"`
	Sheets    Sheets               `mapstructure:",squash"`
	Sync      Sync                 `mapstructure:",squash"`
	Auth      Auth                 `mapstructure:",squash"`
	Pipelines map[string]*Pipeline `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type ReportAPI struct {
	URL            string `mapstructure:"api_url"`
	Token          string `mapstructure:"api_token"`
	TimeoutSeconds int    `mapstructure:"api_timeout_seconds"`
}

type Sheets struct {
	// CredentialsJSON é o JSON da service account do GCP
	CredentialsJSON string `mapstructure:"gcp_credentials"`
	SheetName       string `mapstructure:"sheet_name"`
}

type Sync struct {
	ChunkSize            int     `mapstructure:"chunk_size"`
	MaxWorkers           int     `mapstructure:"max_workers"`
	ExchangeRateFallback float64 `mapstructure:"exchange_rate_fallback"`
	Timezone             string  `mapstructure:"timezone"`
}

type Auth struct {
	Token string `mapstructure:"auth_token"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("API_URL", "https://my.spun.com.br/api/admanager/data")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("API_TIMEOUT_SECONDS", 120)

	viper.SetDefault("GCP_CREDENTIALS", "")
	viper.SetDefault("SHEET_NAME", "BD - GAM")

	viper.SetDefault("CHUNK_SIZE", 10000)            // linhas por lote de escrita
	viper.SetDefault("MAX_WORKERS", 5)               // destinos sincronizados em paralelo
	viper.SetDefault("EXCHANGE_RATE_FALLBACK", 5.35) // câmbio usado quando a célula falha
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("AUTH_TOKEN", "")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Pipelines = BuiltinPipelines()

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
