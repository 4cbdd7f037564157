package container

import (
	"cmp"
	"slices"
)

// Equal 元素个数相同且逐个相等
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// NotEqual !Equal
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc 使用 eq 逐个比较
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare 字典序比较 返回 -1 0 1
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc 使用 cmp 做字典序比较
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}

// Less a < b
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual a <= b
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater a > b
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual a >= b
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
