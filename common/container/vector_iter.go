package container

import "iter"

// 遍历期间修改容器 访问到的元素未定义

// All 正向遍历 下标与值
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// Values 正向遍历值
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(v.storage[i]) {
				return
			}
		}
	}
}

// Backward 反向遍历 下标与值
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.count - 1; i >= 0; i-- {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// Refs 正向遍历 下标与可写引用
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, &v.storage[i]) {
				return
			}
		}
	}
}

// BackwardRefs 反向遍历 下标与可写引用
func (v *Vector[T]) BackwardRefs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.count - 1; i >= 0; i-- {
			if !yield(i, &v.storage[i]) {
				return
			}
		}
	}
}
