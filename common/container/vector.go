package container

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/peng-qing/go_vector/common/options"
)

// Vector 可增长的连续序列容器 线程不安全
// 零值即为可用的空容器
//
// 槽位 [0, count) 为存活元素 [count, capacity) 为原始槽位 保持零值
// Data / Ref 返回的引用在重新分配 (Reserve, 扩容的 PushBack/EmplaceBack/Resize,
// ShrinkToFit) 以及 Clear/Destroy 之后失效
type Vector[T any] struct {
	count    int              // 存活元素个数
	capacity int              // 已分配槽位数
	storage  []T              // 存储块 len == capacity 容量为 0 时为 nil
	conf     *VectorConfig[T] // 配置
}

// NewVector 创建空容器
func NewVector[T any](opts ...options.Option[VectorConfig[T]]) *Vector[T] {
	return &Vector[T]{
		conf: newVectorConfig(opts...),
	}
}

// NewVectorSized 创建包含 n 个默认构造元素的容器
func NewVectorSized[T any](n int, opts ...options.Option[VectorConfig[T]]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	v := NewVector(opts...)
	block, err := v.allocate(n)
	if err != nil {
		return nil, err
	}
	if err := v.conf.traits.constructN(block); err != nil {
		v.release(block)
		return nil, err
	}
	v.adopt(block, n)
	return v, nil
}

// NewVectorFilled 创建包含 n 个 val 拷贝的容器
func NewVectorFilled[T any](n int, val T, opts ...options.Option[VectorConfig[T]]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	v := NewVector(opts...)
	block, err := v.allocate(n)
	if err != nil {
		return nil, err
	}
	if err := v.conf.traits.fillN(block, val); err != nil {
		v.release(block)
		return nil, err
	}
	v.adopt(block, n)
	return v, nil
}

// NewVectorFromSlice 拷贝 src 中的元素创建容器
func NewVectorFromSlice[T any](src []T, opts ...options.Option[VectorConfig[T]]) (*Vector[T], error) {
	v := NewVector(opts...)
	block, err := v.allocate(len(src))
	if err != nil {
		return nil, err
	}
	if err := v.conf.traits.copyN(block, src); err != nil {
		v.release(block)
		return nil, err
	}
	v.adopt(block, len(src))
	return v, nil
}

// NewVectorFromSeq 拷贝迭代器产出的元素创建容器
// 长度未知 按扩容策略逐个追加
func NewVectorFromSeq[T any](seq iter.Seq[T], opts ...options.Option[VectorConfig[T]]) (*Vector[T], error) {
	v := NewVector(opts...)
	for elem := range seq {
		if err := v.PushBack(elem); err != nil {
			v.Destroy()
			return nil, err
		}
	}
	return v, nil
}

// Of 由字面量创建容器
func Of[T any](vals ...T) *Vector[T] {
	v := NewVector[T]()
	block, err := v.allocate(len(vals))
	if err != nil {
		panic(err)
	}
	copy(block, vals)
	v.adopt(block, len(vals))
	return v
}

// Clone 深拷贝 容量等于元素个数 配置与源容器相同
// 失败时源容器不受影响
func (v *Vector[T]) Clone() (*Vector[T], error) {
	dup := &Vector[T]{conf: v.config()}
	if err := dup.build(v.live()); err != nil {
		return nil, err
	}
	return dup, nil
}

// CopyFrom 拷贝赋值
// 先完整构建新状态再交换 失败时当前容器保持不变
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp := &Vector[T]{conf: v.config()}
	if err := tmp.build(other.live()); err != nil {
		return err
	}
	v.swapState(tmp)
	tmp.Destroy()
	return nil
}

// Move 移动构造 接管存储 当前容器变为空
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{conf: v.config()}
	v.swapState(dst)
	return dst
}

// MoveFrom 移动赋值 释放当前元素后接管 other 的存储和配置 other 变为空
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Destroy()
	v.swapState(other)
	v.conf = other.config()
}

// Swap 交换两个容器的内部状态 不构造也不析构元素
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.swapState(other)
	v.conf, other.conf = other.conf, v.conf
}

// Destroy 析构所有元素并归还存储 之后仍可作为空容器使用
func (v *Vector[T]) Destroy() {
	v.Clear()
	v.release(v.storage)
	v.storage = nil
	v.capacity = 0
}

// Empty 是否为空
func (v *Vector[T]) Empty() bool {
	return v.count == 0
}

// Size 元素个数
func (v *Vector[T]) Size() int {
	return v.count
}

// Capacity 已分配槽位数
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// Value 获取元素的拷贝 不经过拷贝钩子
func (v *Vector[T]) Value() []T {
	values := make([]T, v.count)
	copy(values, v.live())
	return values
}

// At 带边界检查的访问
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.storage[i], nil
}

// Ref 带边界检查的可写引用
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.storage[i], nil
}

// Set 用 val 的拷贝替换第 i 个元素 拷贝失败时原元素不变
func (v *Vector[T]) Set(i int, val T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	elem, err := v.config().traits.copy(val)
	if err != nil {
		return err
	}
	v.conf.traits.destroy(&v.storage[i])
	v.storage[i] = elem
	return nil
}

// Get 按下标访问 越界时 panic
func (v *Vector[T]) Get(i int) T {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
	return v.storage[i]
}

// Front 第一个元素 容器为空时 panic
func (v *Vector[T]) Front() T {
	return v.Get(0)
}

// Back 最后一个元素 容器为空时 panic
func (v *Vector[T]) Back() T {
	return v.Get(v.count - 1)
}

// Data 存活元素所在的底层存储 下次重新分配前有效
func (v *Vector[T]) Data() []T {
	return v.live()
}

// Clear 析构所有元素 容量不变
func (v *Vector[T]) Clear() {
	v.config().traits.destroyN(v.storage[:v.count])
	v.count = 0
}

// Reserve 确保容量不小于 n
// n 不超过当前容量时什么也不做 失败时原存储和元素保持不变
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.capacity {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit 释放多余容量
func (v *Vector[T]) ShrinkToFit() error {
	if v.capacity <= v.count {
		return nil
	}
	if v.count == 0 {
		v.release(v.storage)
		v.storage = nil
		v.capacity = 0
		return nil
	}
	return v.reallocate(v.count)
}

// Resize 调整元素个数 新增元素默认构造
func (v *Vector[T]) Resize(n int) error {
	return v.resize(n, v.config().traits.constructN)
}

// ResizeWith 调整元素个数 新增元素为 val 的拷贝
func (v *Vector[T]) ResizeWith(n int, val T) error {
	traits := v.config().traits
	return v.resize(n, func(dst []T) error {
		return traits.fillN(dst, val)
	})
}

// PushBack 追加 val 的拷贝
func (v *Vector[T]) PushBack(val T) error {
	traits := v.config().traits
	elem, err := traits.copy(val)
	if err != nil {
		return err
	}
	if err := v.pushBack(elem); err != nil {
		traits.destroy(&elem)
		return err
	}
	return nil
}

// PushBackMove 追加 val 并接管其所有权 不经过拷贝钩子
// 失败时所有权仍归调用方
func (v *Vector[T]) PushBackMove(val T) error {
	return v.pushBack(val)
}

// EmplaceBack 追加由 build 构造的元素
func (v *Vector[T]) EmplaceBack(build func() (T, error)) error {
	elem, err := build()
	if err != nil {
		return err
	}
	if err := v.pushBack(elem); err != nil {
		v.config().traits.destroy(&elem)
		return err
	}
	return nil
}

// PopBack 析构并移除最后一个元素 容器为空时什么也不做
func (v *Vector[T]) PopBack() {
	if v.count == 0 {
		return
	}
	v.config().traits.destroy(&v.storage[v.count-1])
	v.count--
}

// config 获取配置 零值容器使用默认配置
func (v *Vector[T]) config() *VectorConfig[T] {
	if v.conf == nil {
		v.conf = newVectorConfig[T]()
	}
	return v.conf
}

// live 存活元素区间
func (v *Vector[T]) live() []T {
	return v.storage[:v.count:v.count]
}

// checkIndex 边界检查
func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.count {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.count)
	}
	return nil
}

// allocate 通过存储管理器申请 n 个槽位
func (v *Vector[T]) allocate(n int) ([]T, error) {
	conf := v.config()
	block, err := conf.allocator.Allocate(n)
	if err != nil {
		conf.log().Debug("[Vector] allocate failed", slog.Int("slots", n), slog.Int("limit", conf.allocator.Limit()), slog.Any("error", err))
		return nil, err
	}
	return block, nil
}

// release 归还存储块
func (v *Vector[T]) release(block []T) {
	v.config().allocator.Release(block)
}

// adopt 接管已构造好 count 个元素的存储块 仅用于空容器
func (v *Vector[T]) adopt(block []T, count int) {
	v.storage = block
	v.capacity = len(block)
	v.count = count
}

// build 在空容器上拷贝构造 src 容量恰好为 len(src)
func (v *Vector[T]) build(src []T) error {
	block, err := v.allocate(len(src))
	if err != nil {
		return err
	}
	if err := v.config().traits.copyN(block, src); err != nil {
		v.conf.log().Debug("[Vector] copy rollback", slog.Int("size", len(src)), slog.Any("error", err))
		v.release(block)
		return err
	}
	v.adopt(block, len(src))
	return nil
}

// swapState 交换存储和计数 不交换配置
func (v *Vector[T]) swapState(other *Vector[T]) {
	v.count, other.count = other.count, v.count
	v.capacity, other.capacity = other.capacity, v.capacity
	v.storage, other.storage = other.storage, v.storage
}

// reallocate 重新分配为 newCapacity 个槽位并搬迁元素
// 新存储块就绪前不触碰原存储
func (v *Vector[T]) reallocate(newCapacity int) error {
	block, err := v.allocate(newCapacity)
	if err != nil {
		return err
	}
	relocateN(block, v.storage[:v.count])
	v.release(v.storage)
	v.storage = block
	v.capacity = newCapacity
	return nil
}

// pushBack 追加一个已拥有的元素 必要时按扩容策略增长
func (v *Vector[T]) pushBack(elem T) error {
	if v.count == v.capacity {
		if err := v.reallocate(nextCapacity(v.capacity)); err != nil {
			return err
		}
	}
	v.storage[v.count] = elem
	v.count++
	return nil
}

// resize 调整元素个数 fill 负责在原始槽位上构造新元素并自行回滚
func (v *Vector[T]) resize(n int, fill func(dst []T) error) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if n == v.count {
		return nil
	}
	if n < v.count {
		v.truncate(n)
		return nil
	}
	// 容量足够 直接在尾部构造
	if n <= v.capacity {
		if err := fill(v.storage[v.count:n]); err != nil {
			v.conf.log().Debug("[Vector] resize rollback", slog.Int("size", v.count), slog.Int("want", n), slog.Any("error", err))
			return err
		}
		v.count = n
		return nil
	}
	// 先在新存储块上构造尾部 成功后再搬迁已有元素
	block, err := v.allocate(n)
	if err != nil {
		return err
	}
	// fill 出错或 panic 时归还新存储块
	adopted := false
	defer func() {
		if !adopted {
			v.release(block)
		}
	}()
	if err := fill(block[v.count:n]); err != nil {
		v.conf.log().Debug("[Vector] resize rollback", slog.Int("size", v.count), slog.Int("want", n), slog.Any("error", err))
		return err
	}
	relocateN(block, v.storage[:v.count])
	v.release(v.storage)
	v.storage = block
	v.capacity = n
	v.count = n
	adopted = true
	return nil
}

// truncate 析构 [n, count) 的元素 容量不变 n 不超过 Size()
func (v *Vector[T]) truncate(n int) {
	v.config().traits.destroyN(v.storage[n:v.count])
	v.count = n
}
