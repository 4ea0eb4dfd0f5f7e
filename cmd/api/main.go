package main

import (
	"log"

	"github.com/hiveden/sysfetch/internal/api"
	"github.com/hiveden/sysfetch/internal/config"
	"github.com/hiveden/sysfetch/internal/hw"
	"github.com/hiveden/sysfetch/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	configFile := pflag.String("config", "", "config file (yaml)")
	pflag.String("addr", config.DefaultAddr, "Address to listen on")
	pflag.Parse()

	v := viper.New()
	config.SetDefaults(v)
	v.BindPFlag("addr", pflag.Lookup("addr"))
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	collector := hw.NewCollector(append(cfg.CollectorOptions(), hw.WithLogger(logger))...)
	apiHandler := api.NewAPIHandler(collector, logger)

	r := gin.Default()
	apiHandler.RegisterRoutes(r)

	logger.Info("serving hardware snapshots", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
