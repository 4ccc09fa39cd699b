package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Redis struct {
		Addr string
	}
	Revalidate struct {
		Secret string
	}
}
