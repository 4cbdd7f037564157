package container

import (
	"log/slog"

	"github.com/peng-qing/go_vector/common/memory"
	"github.com/peng-qing/go_vector/common/options"
)

// VectorConfig Vector 配置 构造后只读
type VectorConfig[T any] struct {
	traits      ElementTraits[T]     // 元素生命周期钩子
	logger      *slog.Logger         // 日志 nil 使用 slog.Default()
	maxCapacity int                  // 单块最大槽位数 0 不限制
	allocator   *memory.Allocator[T] // 存储管理器
}

// newVectorConfig 构造配置
func newVectorConfig[T any](opts ...options.Option[VectorConfig[T]]) *VectorConfig[T] {
	conf := options.ApplyOptions(&VectorConfig[T]{}, opts...)
	conf.allocator = memory.NewAllocator[T](conf.maxCapacity)
	return conf
}

// log 获取日志对象
func (c *VectorConfig[T]) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// WithTraits 设置元素生命周期钩子
func WithTraits[T any](traits ElementTraits[T]) options.Option[VectorConfig[T]] {
	return options.WrapperOptions[VectorConfig[T]](func(c *VectorConfig[T]) {
		c.traits = traits
	})
}

// WithLogger 设置日志对象
func WithLogger[T any](logger *slog.Logger) options.Option[VectorConfig[T]] {
	return options.WrapperOptions[VectorConfig[T]](func(c *VectorConfig[T]) {
		c.logger = logger
	})
}

// WithMaxCapacity 限制单个存储块的槽位数 超出时分配失败
func WithMaxCapacity[T any](limit int) options.Option[VectorConfig[T]] {
	return options.WrapperOptions[VectorConfig[T]](func(c *VectorConfig[T]) {
		c.maxCapacity = limit
	})
}
