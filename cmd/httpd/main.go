// Command httpd serves a directory over HTTP/1.1.
package main

import (
	"flag"
	"log/slog"
	"net"
	"os"

	"httpserve/httpmsg"
	"httpserve/server"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr      string `yaml:"addr"`
	Directory string `yaml:"directory"`
	LogLevel  string `yaml:"log_level"`

	MaxLineLength     uint `yaml:"max_line_length"`
	PreferClientOrder bool `yaml:"prefer_client_order"`
}

func defaultConfig() config {
	return config{
		Addr:      "127.0.0.1:4221",
		Directory: ".",
		LogLevel:  "info",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config file")
	}
	return cfg, nil
}

// override applies flag values over whatever the config file provided.
// Empty strings mean the flag was not given and the file value stands.
func (c *config) override(addr, directory, logLevel string) {
	if addr != "" {
		c.Addr = addr
	}
	if directory != "" {
		c.Directory = directory
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	directory := flag.String("directory", "", "serving root directory (overrides config)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	cfg.override(*addr, *directory, *logLevel)

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	// Failing to bind is the only fatal condition.
	l, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("binding listen address", "addr", cfg.Addr, "error", err)
		os.Exit(1)
	}

	logger.Info("serving", "addr", cfg.Addr, "directory", cfg.Directory)

	router := server.NewRouter(server.NewDir(cfg.Directory), logger)
	srv := server.New(l, router, logger, clock.New(), server.Options{
		Parser: httpmsg.ParserOptions{
			MaxLineLength:     cfg.MaxLineLength,
			PreferClientOrder: cfg.PreferClientOrder,
		},
	})

	srv.Serve()
}
