// ebtreed gRPC server
// Provides remote access to in-memory elastic binary trees
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/nainya/ebtree/internal/config"
	"github.com/nainya/ebtree/internal/logger"
	"github.com/nainya/ebtree/internal/metrics"
	"github.com/nainya/ebtree/internal/server"
	pb "github.com/nainya/ebtree/proto/ebtree"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file (defaults built in if empty)")
	port       = flag.Int("port", 0, "Override the gRPC listen port")
	bind       = flag.String("bind", "", "Override the gRPC bind address")
	obsPort    = flag.Int("obs-port", 0, "Override the observability (metrics/health) port")
)

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *bind != "" {
		cfg.Bind = *bind
	}
	if *obsPort != 0 {
		cfg.Observability.Port = *obsPort
	}

	logger.InitGlobalLogger(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})
	log := logger.GetGlobalLogger()
	m := metrics.NewMetrics()

	log.LogServerStart(cfg.Addr())

	lis, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatal("failed to listen").Err(err).Send()
	}

	ebServer := server.NewServer()
	defer ebServer.Close()

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(100*1024*1024),
		grpc.MaxSendMsgSize(100*1024*1024),
		grpc.UnaryInterceptor(server.GrpcMetricsInterceptor(m, log)),
	)
	pb.RegisterEBTreeServiceServer(grpcServer, ebServer)

	// There is no protoc-generated FileDescriptor behind this service
	// (see DESIGN.md), so grpc reflection is skipped: it would report a
	// service with no resolvable method shapes.

	var obsServer *server.ObservabilityServer
	if cfg.Observability.Enabled {
		obsServer = server.NewObservabilityServer(cfg.Observability.Port, log)
		go func() {
			if err := obsServer.Start(); err != nil {
				log.Error("observability server failed").Err(err).Send()
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.LogServerShutdown()
		if obsServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = obsServer.Shutdown(ctx)
		}
		grpcServer.GracefulStop()
	}()

	log.LogServerReady(cfg.Addr())
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal("failed to serve").Err(err).Send()
	}
}
