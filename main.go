package main

import (
	"bufio"
	"bytes"
	"log"
	"ocppcore/internal"
	"ocppcore/internal/config"
	"ocppcore/metrics"
	"ocppcore/ocpp/localauth"
	"ocppcore/server"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

// Replays newline delimited OCPP-J frames from the configured input file and
// writes every answer to stdout.
func main() {
	conf, err := config.GetConfig()
	if err != nil {
		log.Fatalf("config initialization failed: %v", err)
	}

	logger, err := internal.NewLogger(conf.Log.Level, conf.Debug())
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	go func() {
		if err := metrics.Listen(conf, logger); err != nil {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	handler := server.NewSystemHandler(localauth.NewLocalAuthList(conf.CentralSystem.LocalListMaxLength), logger)
	handler.SetHeartbeatInterval(conf.CentralSystem.HeartbeatInterval)
	handler.SetAcceptUnknownTag(conf.CentralSystem.AcceptUnknownTag)

	database, err := internal.NewMongoClient(conf, logger)
	if err != nil {
		logger.Fatal("mongodb setup failed", zap.Error(err))
	}
	if database != nil {
		handler.SetStore(database, conf.Replay.ChargePointId)
		logger.Info("mongodb is configured and enabled")
	}
	if err = handler.OnStart(); err != nil {
		logger.Fatal("central system start failed", zap.Error(err))
	}

	centralSystem := server.NewCentralSystem(handler, logger)

	input, err := os.Open(conf.Replay.Input)
	if err != nil {
		logger.Fatal("open input", zap.String("path", conf.Replay.Input), zap.Error(err))
	}
	defer input.Close()

	out := bufio.NewWriter(os.Stdout)
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	frames := 0
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		frames++
		answer, err := centralSystem.HandleMessage(conf.Replay.ChargePointId, line)
		if err != nil {
			logger.Error("handle message", zap.Int("frame", frames), zap.Error(err))
			continue
		}
		if answer != nil {
			_, _ = out.Write(answer)
			_ = out.WriteByte('\n')
		}
	}
	_ = out.Flush()
	if err = scanner.Err(); err != nil {
		logger.Error("read input", zap.Error(err))
	}
	logger.Info("replay finished", zap.Int("frames", frames))

	if conf.Metrics.Enabled {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
	}
}
