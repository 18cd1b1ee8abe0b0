// Package config loads typed configuration structs from environment
// variables.
//
// Structs declare their surface with `env` tags (caarlos0/env); a .env file
// in the working directory is loaded once, best-effort, before the first
// parse. Each configuration type is parsed once per process and cached, so
// components can call Load independently without re-reading the environment.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
package config
