package container

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Vector[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
)
