package container

// ElementTraits 元素生命周期钩子
// 未设置的钩子使用默认行为: 零值构造 赋值拷贝 析构仅清零
type ElementTraits[T any] struct {
	Construct func() (T, error)      // 默认构造
	Copy      func(src T) (T, error) // 拷贝构造
	Destroy   func(elem *T)          // 析构
}

// construct 默认构造一个元素
func (tr ElementTraits[T]) construct() (T, error) {
	if tr.Construct == nil {
		var zero T
		return zero, nil
	}
	return tr.Construct()
}

// copy 拷贝构造一个元素
func (tr ElementTraits[T]) copy(src T) (T, error) {
	if tr.Copy == nil {
		return src, nil
	}
	return tr.Copy(src)
}

// destroy 析构一个元素 槽位恢复为零值
func (tr ElementTraits[T]) destroy(elem *T) {
	if tr.Destroy != nil {
		tr.Destroy(elem)
	}
	var zero T
	*elem = zero
}

// destroyN 析构区间内所有元素
func (tr ElementTraits[T]) destroyN(elems []T) {
	if tr.Destroy == nil {
		clear(elems)
		return
	}
	for i := range elems {
		tr.destroy(&elems[i])
	}
}

// constructN 在原始槽位上逐个默认构造
// 第 k 个失败时析构已构造的 [0, k) 再返回错误
func (tr ElementTraits[T]) constructN(dst []T) error {
	built := 0
	defer func() {
		if built < len(dst) {
			tr.destroyN(dst[:built])
		}
	}()
	for ; built < len(dst); built++ {
		elem, err := tr.construct()
		if err != nil {
			return err
		}
		dst[built] = elem
	}
	return nil
}

// fillN 在原始槽位上逐个拷贝 val
func (tr ElementTraits[T]) fillN(dst []T, val T) error {
	built := 0
	defer func() {
		if built < len(dst) {
			tr.destroyN(dst[:built])
		}
	}()
	for ; built < len(dst); built++ {
		elem, err := tr.copy(val)
		if err != nil {
			return err
		}
		dst[built] = elem
	}
	return nil
}

// copyN 将 src 逐个拷贝构造到 dst 的原始槽位 len(dst) >= len(src)
func (tr ElementTraits[T]) copyN(dst []T, src []T) error {
	built := 0
	defer func() {
		if built < len(src) {
			tr.destroyN(dst[:built])
		}
	}()
	for ; built < len(src); built++ {
		elem, err := tr.copy(src[built])
		if err != nil {
			return err
		}
		dst[built] = elem
	}
	return nil
}

// relocateN 将元素搬迁到新槽位
// 源槽位不再存活 不调用析构钩子
func relocateN[T any](dst []T, src []T) {
	copy(dst, src)
	clear(src)
}
