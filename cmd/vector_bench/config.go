package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid bench config")
)

const (
	KindPush        = "push"         // 逐个追加 依赖扩容策略
	KindReservePush = "reserve_push" // 预留容量后追加
	KindResize      = "resize"       // 扩大 截断 再填充
	KindShrink      = "shrink"       // 追加后弹出一半再缩容
	KindCopy        = "copy"         // 深拷贝与拷贝赋值
)

// Config 压测配置
type Config struct {
	MaxCapacity int        `yaml:"max_capacity"` // 单块最大槽位数 0 不限制
	DebugAddr   string     `yaml:"debug_addr"`   // pprof 与 /metrics 监听地址 为空不监听
	Workloads   []Workload `yaml:"workloads"`
}

// Workload 单个压测任务
type Workload struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Elements int    `yaml:"elements"`
	Repeat   int    `yaml:"repeat"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Workloads: []Workload{
			{Name: "push-100k", Kind: KindPush, Elements: 100_000, Repeat: 5},
			{Name: "reserve-push-100k", Kind: KindReservePush, Elements: 100_000, Repeat: 5},
			{Name: "resize-100k", Kind: KindResize, Elements: 100_000, Repeat: 5},
			{Name: "shrink-100k", Kind: KindShrink, Elements: 100_000, Repeat: 5},
			{Name: "copy-100k", Kind: KindCopy, Elements: 100_000, Repeat: 5},
		},
	}
}

// LoadConfig 从 yaml 文件加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig 解析 yaml 配置
func ParseConfig(data []byte) (*Config, error) {
	conf := &Config{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate 校验配置 Repeat 缺省为 1
func (c *Config) Validate() error {
	if c.MaxCapacity < 0 {
		return fmt.Errorf("%w: max_capacity %d", ErrInvalidConfig, c.MaxCapacity)
	}
	if len(c.Workloads) == 0 {
		return fmt.Errorf("%w: no workloads", ErrInvalidConfig)
	}
	for i := range c.Workloads {
		w := &c.Workloads[i]
		switch w.Kind {
		case KindPush, KindReservePush, KindResize, KindShrink, KindCopy:
		default:
			return fmt.Errorf("%w: workload %q unknown kind %q", ErrInvalidConfig, w.Name, w.Kind)
		}
		if w.Elements < 0 {
			return fmt.Errorf("%w: workload %q elements %d", ErrInvalidConfig, w.Name, w.Elements)
		}
		if w.Repeat <= 0 {
			w.Repeat = 1
		}
		if w.Name == "" {
			w.Name = fmt.Sprintf("%s-%d", w.Kind, i)
		}
	}
	return nil
}
