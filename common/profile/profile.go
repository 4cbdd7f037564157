package profile

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"runtime"
	"runtime/debug"
	rpprof "runtime/pprof"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peng-qing/go_vector/common/memory"
)

// ProfileManager 性能分析管理器
// 在运行时内存统计之外 额外报告容器存储的分配统计
type ProfileManager struct {
	lock             sync.Mutex
	inMemoryAnalysis bool               // 是否内存分析中
	profileIndex     int                // 文件索引
	filename         string             // 文件名
	memoryFile       *os.File           // 内存导出文件
	stats            *memory.Statistics // 存储分配统计
	registry         *prometheus.Registry
}

// NewProfileManager 构造函数
// @param stats 存储分配统计 nil 时使用 memory.AS
func NewProfileManager(stats *memory.Statistics) *ProfileManager {
	if stats == nil {
		stats = memory.AS
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(memory.NewStatisticsCollector(stats))
	return &ProfileManager{
		stats:    stats,
		registry: registry,
	}
}

// Register 注册 http handler
func (p *ProfileManager) Register(mux *http.ServeMux) {
	mux.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	mux.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	mux.Handle("/debug/pprof/memory/gc", http.HandlerFunc(p.ProcessForceGC))
	mux.Handle("/debug/pprof/memory/open", http.HandlerFunc(p.ProcessMemoryAnalysis))
	mux.Handle("/debug/pprof/memory/stop", http.HandlerFunc(p.ProcessMemoryAnalysisStop))
	mux.Handle("/debug/storage", http.HandlerFunc(p.ProcessStorageStats))
	mux.Handle("/metrics", promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
}

// ProcessForceGC 强制调用一次GC
func (p *ProfileManager) ProcessForceGC(w http.ResponseWriter, r *http.Request) {
	runtime.GC()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "The forced call to GC was successful, memory trace:\n %s\n, Try /debug/pprof/memory/open start memory analysis", p.MemoryStats())
}

// ProcessStorageStats 输出存储分配统计
func (p *ProfileManager) ProcessStorageStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, p.StorageStats())
}

// ProcessMemoryAnalysis 开始内存分析
func (p *ProfileManager) ProcessMemoryAnalysis(w http.ResponseWriter, r *http.Request) {
	p.lock.Lock()
	defer p.lock.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	// 避免重复开启
	if p.inMemoryAnalysis {
		fmt.Fprintf(w, "Memory Analysis can't open again... Try /debug/pprof/memory/stop to stop")
		return
	}
	p.profileIndex++
	p.filename = fmt.Sprintf("memory.profile.%s.%d", time.Now().Format("2006-01-02"), p.profileIndex)
	file, err := os.OpenFile(p.filename, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		slog.Error("[ProfileManager] open memory profile failed", slog.String("filename", p.filename), slog.Any("err", err))
		fmt.Fprintf(w, "open memory profile failed, err:%v", err)
		return
	}
	if err := rpprof.WriteHeapProfile(file); err != nil {
		file.Close()
		fmt.Fprintf(w, "generate memory analysis profile failed, err:%v", err)
		return
	}
	p.memoryFile = file
	p.inMemoryAnalysis = true
	fmt.Fprintf(w, "pprof memory analysis is start, Try /debug/pprof/memory/stop to stop")
}

// ProcessMemoryAnalysisStop 停止内存分析
func (p *ProfileManager) ProcessMemoryAnalysisStop(w http.ResponseWriter, r *http.Request) {
	p.lock.Lock()
	defer p.lock.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !p.inMemoryAnalysis {
		fmt.Fprintf(w, "memory analysis is not running, Try /debug/pprof/memory/open start memory analysis")
		return
	}
	p.inMemoryAnalysis = false
	if err := p.memoryFile.Close(); err != nil {
		slog.Error("[ProfileManager] close memory profile failed", slog.String("filename", p.filename), slog.Any("err", err))
	}
	p.memoryFile = nil
	fmt.Fprintf(w, "memory analysis is stop, profile:%s, memory trace:\n %s\n, Try /debug/pprof/memory/open start memory analysis", p.filename, p.MemoryStats())
}

// MemoryStats 运行时内存状态字符串
func (p *ProfileManager) MemoryStats() string {
	var (
		memStats      runtime.MemStats
		memTabBuilder strings.Builder
	)

	runtime.ReadMemStats(&memStats)

	// 使用 tabWriter 对齐列
	tabWriter := tabwriter.NewWriter(&memTabBuilder, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tabWriter, "字段名\t字段值\t说明\n")
	fmt.Fprintf(tabWriter, "Alloc\t %d \t当前正在使用的堆内存字节数(≈ HeapAlloc)\n", memStats.Alloc)
	fmt.Fprintf(tabWriter, "TotalAlloc\t %d \t程序运行以来累计分配的堆内存总量\n", memStats.TotalAlloc)
	fmt.Fprintf(tabWriter, "Sys\t %d \t向操作系统申请的内存总量 (堆+栈+runtime)\n", memStats.Sys)
	fmt.Fprintf(tabWriter, "Mallocs\t %d \t累计分配的堆对象数\n", memStats.Mallocs)
	fmt.Fprintf(tabWriter, "Frees\t %d \t累计释放的堆对象数\n", memStats.Frees)
	fmt.Fprintf(tabWriter, "HeapInuse\t %d \t正在使用的堆内存字节数\n", memStats.HeapInuse)
	fmt.Fprintf(tabWriter, "HeapObjects\t %d \t当前存活的堆对象数\n", memStats.HeapObjects)
	fmt.Fprintf(tabWriter, "NumGC\t %d \t完成的垃圾回收次数\n", memStats.NumGC)
	fmt.Fprintf(tabWriter, "PauseTotalNs\t %d \t垃圾回收累计暂停时间(纳秒)\n", memStats.PauseTotalNs)
	tabWriter.Flush()

	return memTabBuilder.String() + p.StorageStats()
}

// StorageStats 存储分配统计字符串
func (p *ProfileManager) StorageStats() string {
	var builder strings.Builder
	snap := p.stats.Get()

	tabWriter := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tabWriter, "AllocCount\t %d \t存储块分配次数\n", snap.AllocCount)
	fmt.Fprintf(tabWriter, "ReleaseCount\t %d \t存储块归还次数\n", snap.ReleaseCount)
	fmt.Fprintf(tabWriter, "FailedCount\t %d \t被拒绝的分配次数\n", snap.FailedCount)
	fmt.Fprintf(tabWriter, "AllocBytes\t %d \t累计分配字节数\n", snap.AllocBytes)
	fmt.Fprintf(tabWriter, "ReleaseBytes\t %d \t累计归还字节数\n", snap.ReleaseBytes)
	fmt.Fprintf(tabWriter, "InUseBytes\t %d \t未归还字节数\n", snap.InUseBytes())
	tabWriter.Flush()

	return builder.String()
}

// ListenProfile 开始监听
func (p *ProfileManager) ListenProfile(addr string) {
	mux := http.NewServeMux()
	p.Register(mux)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("[ProfileManager] ListenProfile critical", slog.Any("err", err), slog.String("stack", string(debug.Stack())))
			}
		}()
		slog.Info("[ProfileManager] ListenProfile starting", slog.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("[ProfileManager] ListenProfile stopped", slog.String("addr", addr), slog.Any("err", err))
		}
	}()
}
