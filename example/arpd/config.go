package main

import (
	"github.com/BurntSushi/toml"

	net "github.com/progbits/xv6-net"
	"github.com/progbits/xv6-net/internal/errors"
)

// arpd config.toml key mapping.
type fileConfig struct {
	MAC        string  `toml:"mac"`
	IP         string  `toml:"ip"`
	Input      string  `toml:"input"`
	Output     string  `toml:"output"`
	ReplyRate  float64 `toml:"reply_rate"`
	ReplyBurst int64   `toml:"reply_burst"`
}

type config struct {
	mac        net.MAC
	ip         net.IPv4
	input      string
	output     string
	replyRate  float64
	replyBurst int64
}

// loadConfig reads and validates the TOML config at path.
func loadConfig(path string) (config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return config{}, errors.Annotate(err, "load config")
	}

	mac, err := net.ParseMAC(raw.MAC)
	if err != nil {
		return config{}, errors.Annotate(err, "load config")
	}
	ip, err := net.ParseIPv4(raw.IP)
	if err != nil {
		return config{}, errors.Annotate(err, "load config")
	}
	if raw.Input == "" {
		return config{}, errors.New("load config: missing input capture path")
	}
	if raw.Output == "" {
		return config{}, errors.New("load config: missing output capture path")
	}

	cfg := config{
		mac:        mac,
		ip:         ip,
		input:      raw.Input,
		output:     raw.Output,
		replyRate:  raw.ReplyRate,
		replyBurst: raw.ReplyBurst,
	}
	if cfg.replyBurst == 0 {
		cfg.replyBurst = 1
	}
	return cfg, nil
}
