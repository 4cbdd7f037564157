package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/peng-qing/go_vector/common/container"
	"github.com/peng-qing/go_vector/common/memory"
)

// Result 压测结果
type Result struct {
	Workload
	Duration      time.Duration // 总耗时
	Allocations   uint64        // 存储块分配次数
	FinalSize     int           // 最后一轮结束前的元素个数
	FinalCapacity int           // 最后一轮结束前的容量
}

// PerOp 单元素平均耗时
func (r Result) PerOp() time.Duration {
	ops := r.Elements * r.Repeat
	if ops == 0 {
		return 0
	}
	return r.Duration / time.Duration(ops)
}

// RunWorkload 执行单个压测任务
func RunWorkload(w Workload, maxCapacity int) (Result, error) {
	result := Result{Workload: w}
	before := memory.AS.Get()
	start := time.Now()

	for round := range w.Repeat {
		v := container.NewVector(container.WithMaxCapacity[int](maxCapacity))
		if err := runOnce(v, w); err != nil {
			v.Destroy()
			return result, fmt.Errorf("workload %q round %d: %w", w.Name, round, err)
		}
		result.FinalSize = v.Size()
		result.FinalCapacity = v.Capacity()
		v.Destroy()
	}

	result.Duration = time.Since(start)
	result.Allocations = memory.AS.Get().AllocCount - before.AllocCount
	slog.Info("[Bench] workload done", slog.String("name", w.Name), slog.String("kind", w.Kind),
		slog.Int("elements", w.Elements), slog.Duration("duration", result.Duration), slog.Uint64("allocations", result.Allocations))
	return result, nil
}

// runOnce 在 v 上执行一轮
func runOnce(v *container.Vector[int], w Workload) error {
	switch w.Kind {
	case KindPush:
		return pushN(v, w.Elements)
	case KindReservePush:
		if err := v.Reserve(w.Elements); err != nil {
			return err
		}
		return pushN(v, w.Elements)
	case KindResize:
		if err := v.Resize(w.Elements); err != nil {
			return err
		}
		if err := v.Resize(w.Elements / 2); err != nil {
			return err
		}
		return v.ResizeWith(w.Elements, 1)
	case KindShrink:
		if err := pushN(v, w.Elements); err != nil {
			return err
		}
		for range w.Elements / 2 {
			v.PopBack()
		}
		return v.ShrinkToFit()
	case KindCopy:
		if err := pushN(v, w.Elements); err != nil {
			return err
		}
		dup, err := v.Clone()
		if err != nil {
			return err
		}
		defer dup.Destroy()
		if !container.Equal(v, dup) {
			return fmt.Errorf("clone of %d elements differs", v.Size())
		}
		return v.CopyFrom(dup)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, w.Kind)
	}
}

// pushN 追加 0..n-1
func pushN(v *container.Vector[int], n int) error {
	for i := range n {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}
	return nil
}
