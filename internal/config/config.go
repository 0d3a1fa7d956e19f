package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/common"
	draculaconfig "github.com/soldracula/dracula/modules/dracula/config"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/soldracula/dracula/pkg/middleware/requestcontext"
	"github.com/soldracula/dracula/pkg/middleware/requestlogger"
	"github.com/soldracula/dracula/pkg/storyclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkLocalnet,
		Ledger: Ledger{
			Commitment:     "confirmed",
			ConfirmTimeout: 60 * time.Second,
			PollInterval:   500 * time.Millisecond,
		},
		Story: storyclient.Config{
			BaseURL: "http://localhost:3000",
		},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
		},
		Modules: Modules{
			Dracula: draculaconfig.Config{
				Database: "memory",
				Coordinator: draculaconfig.CoordinatorConfig{
					DedupTTL: time.Hour,
				},
				Writer: draculaconfig.WriterConfig{
					Label:       "Dracula!",
					Description: "Best meme of all time.",
					URL:         "http://soldracula.is",
					Metadata:    "{}",
					APIVersion:  1,
					Visible:     true,
				},
			},
		},
	}
)

type Config struct {
	Logger     logger.Config      `mapstructure:"logger"`
	Network    common.Network     `mapstructure:"network"`
	Ledger     Ledger             `mapstructure:"ledger"`
	Wallet     Wallet             `mapstructure:"wallet"`
	Story      storyclient.Config `mapstructure:"story"`
	HTTPServer HTTPServerConfig   `mapstructure:"http_server"`
	Modules    Modules            `mapstructure:"modules"`
}

type Ledger struct {
	// Endpoint overrides the default JSON-RPC endpoint of the network.
	Endpoint       string        `mapstructure:"endpoint"`
	Commitment     string        `mapstructure:"commitment"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	Debug          bool          `mapstructure:"debug"`
}

type Wallet struct {
	// Path of the keypair file, a JSON array of 64 bytes.
	Path string `mapstructure:"path"`
}

type Modules struct {
	Dracula draculaconfig.Config `mapstructure:"dracula"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"requestip"`
}

// Parse parse the configuration from environment variables
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

// Load returns the loaded configuration
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if isInit {
		return *config
	}
	return parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
// Example (where serverCmd is a Cobra instance):
//
//	serverCmd.Flags().Int("port", 1138, "Port to run Application server on")
//	Viper.BindPFlag("port", serverCmd.Flags().Lookup("port"))
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slog.String("package", "config"), slogx.Error(err))
	}
}

// SetDefault sets the default value for this key.
// Default only used when no value is provided by the user via flag, config or ENV.
func SetDefault(key string, value any) { viper.SetDefault(key, value) }

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the keypair location of Anchor tooling is honored as the wallet path
	_ = viper.BindEnv("wallet.path", "WALLET_PATH", "ANCHOR_WALLET")

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}
