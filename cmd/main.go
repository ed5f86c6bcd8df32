package main

import (
	"fmt"
	"log"
	"os"

	"garage/backend/foundation/web"
	"garage/backend/internal/auth"
	"garage/backend/internal/commands"
	"garage/backend/internal/pkg/config"
	"garage/backend/internal/pkg/repository/postgresql"
	"garage/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	var flags struct {
		Web struct {
			Port           string `conf:"default::8080"`
			PrivatePEMPath string `conf:"default:./private.pem"`
			StaticsDir     string `conf:"default:./statics"`
		}
	}

	if err := conf.Parse(os.Args[1:], "GARAGE", &flags); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("GARAGE", &flags)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewDB(postgresql.Config{
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
	})
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	authenticator, err := auth.New(flags.Web.PrivatePEMPath)
	if err != nil {
		return errors.Wrap(err, "constructing authenticator")
	}

	app := web.NewApp()
	r := router.NewRouter(
		app,
		postgresDB,
		redisDB,
		flags.Web.Port,
		authenticator,
		flags.Web.StaticsDir,
		cfg.AdminPasswordHash,
		cfg.BaseUrl,
		flags.Web.PrivatePEMPath,
	)

	return r.Init()
}
