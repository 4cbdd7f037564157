package memory

import (
	"errors"
	"math"
	"unsafe"
)

var (
	ErrAllocation = errors.New("memory allocation failed")
)

// Allocator 原始存储管理器
// 只负责申请和归还连续存储块 不感知元素的生命周期
type Allocator[T any] struct {
	limit int // 单个存储块允许的最大槽位数 0 不限制
}

// NewAllocator 构造函数
// @param limit 单块最大槽位数 <=0 表示不限制
func NewAllocator[T any](limit int) *Allocator[T] {
	if limit < 0 {
		limit = 0
	}
	return &Allocator[T]{
		limit: limit,
	}
}

// Limit 单块最大槽位数
func (a *Allocator[T]) Limit() int {
	if a == nil {
		return 0
	}
	return a.limit
}

// Allocate 申请恰好容纳 n 个元素的存储块
// n == 0 返回 nil 槽位均为零值 视为未构造
func (a *Allocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		AS.incrFailed()
		return nil, ErrAllocation
	}
	size := elemSize[T]()
	if size > 0 && uint64(n) > math.MaxInt/size {
		AS.incrFailed()
		return nil, ErrAllocation
	}
	if a.Limit() > 0 && n > a.limit {
		AS.incrFailed()
		return nil, ErrAllocation
	}
	block := make([]T, n)
	AS.incrAlloc(uint64(n) * size)
	return block, nil
}

// Release 归还存储块
// 调用方保证块内已经没有存活元素
func (a *Allocator[T]) Release(block []T) {
	if block == nil {
		return
	}
	// 断开引用 方便 GC 回收
	clear(block[:cap(block)])
	AS.incrRelease(uint64(cap(block)) * elemSize[T]())
}

// elemSize 元素字节数
func elemSize[T any]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}
