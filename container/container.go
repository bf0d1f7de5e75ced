package container

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gocrud/beans/bean"
	"github.com/gocrud/beans/factory"
	"github.com/gocrud/beans/logging"
	"github.com/gocrud/beans/types"
)

// ErrAlreadyRegistered 同名 bean 或实例重复注册
var ErrAlreadyRegistered = errors.New("beans: already registered")

// ErrUnknownBean 请求构建的名字没有对应的描述符
var ErrUnknownBean = errors.New("beans: unknown bean")

// Container 轻量 DI 容器：持有 bean 描述符和预构建实例，
// 对外暴露 Build(name)，内部为每个描述符缓存一次解析好的 ObjectFactory。
//
// 容器同时就是引用解析提供方：描述符里的引用属性通过 Lookup 按名取值。
// 注意：容器不管理生命周期 —— Build 每次返回新实例，
// 需要共享的组件用 RegisterInstance 注册进来。
type Container struct {
	mu          sync.RWMutex
	definitions map[string]*bean.Definition
	factories   map[string]*factory.ObjectFactory
	instances   map[string]any

	registry *types.Registry
	logger   logging.Logger
}

// Option 配置容器。
type Option func(*Container)

// WithRegistry 指定类型注册表，缺省用包级默认注册表。
func WithRegistry(r *types.Registry) Option {
	return func(c *Container) { c.registry = r }
}

// WithLogger 指定诊断日志，缺省丢弃。
func WithLogger(l logging.Logger) Option {
	return func(c *Container) { c.logger = l }
}

// New 创建一个空容器。
func New(opts ...Option) *Container {
	c := &Container{
		definitions: make(map[string]*bean.Definition),
		factories:   make(map[string]*factory.ObjectFactory),
		instances:   make(map[string]any),
		registry:    types.Default(),
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register 注册一个 bean 描述符。同名描述符或实例已存在时报错。
func (c *Container) Register(def *bean.Definition) error {
	if def.Name == "" {
		return fmt.Errorf("beans: definition needs a name (class %q)", def.Class)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.definitions[def.Name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, def.Name)
	}
	if _, exists := c.instances[def.Name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, def.Name)
	}
	c.definitions[def.Name] = def
	return nil
}

// RegisterInstance 注册一个预构建实例，按名共享。
func (c *Container) RegisterInstance(name string, instance any) error {
	if name == "" {
		return fmt.Errorf("beans: instance needs a name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.instances[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	if _, exists := c.definitions[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	c.instances[name] = instance
	return nil
}

// Build 按名构建一个实例。可重复调用：
// 策略解析只在第一次发生并被缓存，之后每次调用都走缓存的策略产出新实例。
func (c *Container) Build(name string) (any, error) {
	f, err := c.factoryFor(name)
	if err != nil {
		return nil, err
	}
	// 锁外执行，引用解析可能递归回容器
	return f.Create()
}

// Lookup 实现引用解析：先查预构建实例，再按描述符现场构建。
func (c *Container) Lookup(name string) (any, error) {
	c.mu.RLock()
	instance, ok := c.instances[name]
	_, hasDef := c.definitions[name]
	c.mu.RUnlock()

	if ok {
		return instance, nil
	}
	if hasDef {
		return c.Build(name)
	}
	return nil, fmt.Errorf("%w: %q", factory.ErrReferenceNotFound, name)
}

// Has 返回名字是否已注册（描述符或实例）。
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasDef := c.definitions[name]
	_, hasInst := c.instances[name]
	return hasDef || hasInst
}

// Names 返回所有注册名（顺序未定义），用于诊断。
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.definitions)+len(c.instances))
	for name := range c.definitions {
		out = append(out, name)
	}
	for name := range c.instances {
		out = append(out, name)
	}
	return out
}

// factoryFor 返回描述符对应的 ObjectFactory，第一次访问时解析并缓存。
// 并发首次访问时解析可能发生多次，结果等价，后写覆盖无害。
func (c *Container) factoryFor(name string) (*factory.ObjectFactory, error) {
	c.mu.RLock()
	f, ok := c.factories[name]
	def, hasDef := c.definitions[name]
	c.mu.RUnlock()

	if ok {
		return f, nil
	}
	if !hasDef {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBean, name)
	}

	f, err := factory.New(def, factory.Environment{
		Types:  c.registry,
		Refs:   c,
		Logger: c.logger,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.factories[name] = f
	c.mu.Unlock()
	return f, nil
}
