package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/peng-qing/go_vector/common/profile"
)

func main() {
	var (
		configPath = flag.String("config", "", "yaml workload file, built-in workloads when empty")
		debugAddr  = flag.String("debug", "", "pprof and /metrics listen address, overrides debug_addr")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	conf := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			slog.Error("[Bench] load config failed", slog.String("path", *configPath), slog.Any("err", err))
			os.Exit(1)
		}
		conf = loaded
	}
	if *debugAddr != "" {
		conf.DebugAddr = *debugAddr
	}
	if conf.DebugAddr != "" {
		profile.NewProfileManager(nil).ListenProfile(conf.DebugAddr)
	}

	results := make([]Result, 0, len(conf.Workloads))
	for _, w := range conf.Workloads {
		result, err := RunWorkload(w, conf.MaxCapacity)
		if err != nil {
			slog.Error("[Bench] workload failed", slog.String("name", w.Name), slog.Any("err", err))
			os.Exit(1)
		}
		results = append(results, result)
	}
	PrintResults(os.Stdout, results)

	if conf.DebugAddr == "" {
		return
	}
	// 保留调试端口 等待退出信号
	slog.Info("[Bench] waiting for signal", slog.String("debug", conf.DebugAddr))
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c
}

// PrintResults 对齐输出结果
func PrintResults(w io.Writer, results []Result) {
	tabWriter := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tabWriter, "NAME\tKIND\tELEMENTS\tREPEAT\tDURATION\tPER-OP\tALLOCS\tSIZE\tCAPACITY")
	for _, r := range results {
		fmt.Fprintf(tabWriter, "%s\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%d\n",
			r.Name, r.Kind, r.Elements, r.Repeat, r.Duration, r.PerOp(), r.Allocations, r.FinalSize, r.FinalCapacity)
	}
	tabWriter.Flush()
}
