package memory

import "sync/atomic"

// Statistics 存储分配统计
type Statistics struct {
	allocCount   uint64
	releaseCount uint64
	failedCount  uint64
	allocBytes   uint64
	releaseBytes uint64
}

// NewStatistics 创建统计对象
func NewStatistics() *Statistics {
	return &Statistics{}
}

// incrAlloc 记录一次成功分配
func (s *Statistics) incrAlloc(bytes uint64) {
	atomic.AddUint64(&s.allocCount, 1)
	atomic.AddUint64(&s.allocBytes, bytes)
}

// incrRelease 记录一次归还
func (s *Statistics) incrRelease(bytes uint64) {
	atomic.AddUint64(&s.releaseCount, 1)
	atomic.AddUint64(&s.releaseBytes, bytes)
}

// incrFailed 记录一次失败的分配
func (s *Statistics) incrFailed() {
	atomic.AddUint64(&s.failedCount, 1)
}

// Reset 重置
func (s *Statistics) Reset() {
	atomic.StoreUint64(&s.allocCount, 0)
	atomic.StoreUint64(&s.releaseCount, 0)
	atomic.StoreUint64(&s.failedCount, 0)
	atomic.StoreUint64(&s.allocBytes, 0)
	atomic.StoreUint64(&s.releaseBytes, 0)
}

// Snapshot 统计快照
type Snapshot struct {
	AllocCount   uint64
	ReleaseCount uint64
	FailedCount  uint64
	AllocBytes   uint64
	ReleaseBytes uint64
}

// InUseBytes 已分配未归还的字节数
// 未调用 Destroy 就被 GC 回收的容器不会计入归还
func (s Snapshot) InUseBytes() uint64 {
	if s.AllocBytes < s.ReleaseBytes {
		return 0
	}
	return s.AllocBytes - s.ReleaseBytes
}

// Get 获取
func (s *Statistics) Get() Snapshot {
	return Snapshot{
		AllocCount:   atomic.LoadUint64(&s.allocCount),
		ReleaseCount: atomic.LoadUint64(&s.releaseCount),
		FailedCount:  atomic.LoadUint64(&s.failedCount),
		AllocBytes:   atomic.LoadUint64(&s.allocBytes),
		ReleaseBytes: atomic.LoadUint64(&s.releaseBytes),
	}
}

// AS 全局分配统计对象
var AS = NewStatistics()
