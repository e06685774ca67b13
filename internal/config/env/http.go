package env

import (
	"errors"
	"gamehub_backend/internal/config"
	"net"
	"os"
)

const (
	hostEnvName = "HTTP_HOST"
	portEnvName = "HTTP_PORT"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(hostEnvName)

	port := os.Getenv(portEnvName)
	if len(port) == 0 {
		return nil, errors.New("http port not found")
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
