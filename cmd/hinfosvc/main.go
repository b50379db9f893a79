package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/hinfosvc/hinfosvc/global"
	"github.com/hinfosvc/hinfosvc/pkg/logger"
	"github.com/hinfosvc/hinfosvc/pkg/tools"
	"github.com/hinfosvc/hinfosvc/sysinfo"
	"github.com/hinfosvc/hinfosvc/web/server"
)

const (
	portMin = 1025
	portMax = 65535
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hinfosvc", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { usage(fs) }
	configPath := fs.String("config", "", "optional yaml config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		usage(fs)
		return 1
	}
	port, err := strconv.Atoi(fs.Arg(0))
	if err != nil || port < portMin || port > portMax {
		fmt.Fprintf(os.Stderr, "hinfosvc: invalid port %q, expected an integer in [%d,%d]\n", fs.Arg(0), portMin, portMax)
		usage(fs)
		return 1
	}

	var cfg global.DefaultConfig
	if err := global.LoadDefaultConfig(*configPath, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "hinfosvc: load config %s: %s\n", *configPath, err)
		return 1
	}

	logger.InitLogger(&cfg.LoggerConfig)
	defer logger.DefaultLogger().Close()
	logger.Debug("effective config: %s", tools.ToJson(&cfg))

	probe, err := sysinfo.NewProbe(cfg.ProbeConfig)
	if err != nil {
		logger.Fatal("init system probe failed. Error: %s", err.Error())
		return 1
	}

	srv := server.New(server.Config{Port: port}, probe, logger.DefaultLogger())
	if err := srv.Run(); err != nil {
		logger.Fatal("server failed. Error: %s", err.Error())
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: hinfosvc [-config file] <port>\n")
	fmt.Fprintf(os.Stderr, "  <port>  TCP port to listen on, %d-%d\n", portMin, portMax)
	fs.PrintDefaults()
}
