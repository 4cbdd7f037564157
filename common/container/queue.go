package container

import "log/slog"

const (
	// 缩容下限
	initCapacity = 8
)

// Queue 队列 线程不安全
// 底层使用 Vector 存储 begin 之前的槽位已出队
type Queue[T any] struct {
	data  *Vector[T]
	begin int
}

// NewQueue 创建队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		data:  NewVector[T](),
		begin: 0,
	}
}

// Empty 判断队列是否为空
func (q *Queue[T]) Empty() bool {
	return q.Size() <= 0
}

// Size 获取队列长度
func (q *Queue[T]) Size() int {
	return q.data.Size() - q.begin
}

// Capacity 底层存储容量
func (q *Queue[T]) Capacity() int {
	return q.data.Capacity()
}

// Clear 清空队列 保留容量
func (q *Queue[T]) Clear() {
	q.data.Clear()
	q.begin = 0
}

// Value 获取队列数据
func (q *Queue[T]) Value() []T {
	values := make([]T, 0, q.Size())
	return append(values, q.data.Data()[q.begin:]...)
}

// Push 入队
func (q *Queue[T]) Push(val T) error {
	return q.data.PushBack(val)
}

// Peek 查看队首
func (q *Queue[T]) Peek() (val T, ok bool) {
	if q.Empty() {
		return
	}
	return q.data.Get(q.begin), true
}

// Pop 出队
func (q *Queue[T]) Pop() (val T, ok bool) {
	if q.Empty() {
		return
	}
	slot := &q.data.Data()[q.begin]
	val = *slot
	// 所有权转交调用方 槽位恢复零值
	var zero T
	*slot = zero
	q.begin++

	// 已出队部分过半时整理
	if q.begin*2 >= q.data.Size() {
		q.compact()
	}
	return val, true
}

// compact 将剩余元素搬到首部 必要时缩容
func (q *Queue[T]) compact() {
	live := q.data.Data()
	length := copy(live, live[q.begin:])
	// 尾部是已搬走的槽位 截断只会清零
	q.data.truncate(length)
	q.begin = 0

	if q.data.Capacity() > initCapacity && length <= q.data.Capacity()/4 {
		if err := q.data.ShrinkToFit(); err != nil {
			slog.Debug("[Queue] compact shrink failed", slog.Int("size", length), slog.Any("error", err))
		}
	}
}
