package types

import (
	"fmt"
	"reflect"
	"sync"
)

// Go 没有按名加载类型的能力，所以类型解析是一张显式注册表：
// 名字 -> 结构体类型，外加该类型的构造函数列表和具名生产函数。
// 注册通常发生在程序初始化阶段（init 或组装根）。

// Entry 一个已注册类型的元数据。构建完成后不可变，可并发读取。
type Entry struct {
	name  string
	rtype reflect.Type

	// ctors 按注册（声明）顺序保存构造函数。
	// 构造函数策略按参数个数取第一个匹配项。
	ctors []reflect.Value

	// funcs 具名的包级生产函数，工厂方法策略的"静态"形态。
	funcs map[string]reflect.Value
}

// Name 返回注册名。
func (e *Entry) Name() string { return e.name }

// Type 返回注册的结构体类型（非指针）。
func (e *Entry) Type() reflect.Type { return e.rtype }

// Constructors 返回按声明顺序排列的构造函数。
func (e *Entry) Constructors() []reflect.Value { return e.ctors }

// Func 按名字查找生产函数。
func (e *Entry) Func(name string) (reflect.Value, bool) {
	fn, ok := e.funcs[name]
	return fn, ok
}

// Option 配置类型注册。
type Option func(*Entry) error

// WithConstructor 为类型追加一个构造函数。
// 注意：构造函数策略只按参数个数匹配，同一参数个数注册多个构造函数时
// 取第一个注册的，这是有意保留的行为而不是缺陷修复点。
func WithConstructor(fn any) Option {
	return func(e *Entry) error {
		v := reflect.ValueOf(fn)
		if !v.IsValid() || v.Kind() != reflect.Func {
			return fmt.Errorf("types: constructor for %q must be a function, got %T", e.name, fn)
		}
		if v.Type().NumOut() == 0 {
			return fmt.Errorf("types: constructor for %q must return at least one value", e.name)
		}
		e.ctors = append(e.ctors, v)
		return nil
	}
}

// WithFunc 注册一个具名生产函数（零参），作为静态工厂方法使用。
func WithFunc(name string, fn any) Option {
	return func(e *Entry) error {
		v := reflect.ValueOf(fn)
		if !v.IsValid() || v.Kind() != reflect.Func {
			return fmt.Errorf("types: func %q for %q must be a function, got %T", name, e.name, fn)
		}
		if _, exists := e.funcs[name]; exists {
			return fmt.Errorf("types: func %q already registered for %q", name, e.name)
		}
		e.funcs[name] = v
		return nil
	}
}

// Registry 名字到类型元数据的注册表。
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry 创建一个空的注册表。
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register 用 prototype 的类型注册名字 name。
// prototype 可以是结构体值、结构体指针或 reflect.Type。
func (r *Registry) Register(name string, prototype any, opts ...Option) error {
	rtype, err := structTypeOf(prototype)
	if err != nil {
		return fmt.Errorf("types: register %q: %w", name, err)
	}

	entry := &Entry{
		name:  name,
		rtype: rtype,
		funcs: make(map[string]reflect.Value),
	}
	for _, opt := range opts {
		if err := opt(entry); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("types: %q already registered", name)
	}
	r.entries[name] = entry
	return nil
}

// MustRegister 同 Register，失败时 panic。用于 init 阶段的注册。
func (r *Registry) MustRegister(name string, prototype any, opts ...Option) {
	if err := r.Register(name, prototype, opts...); err != nil {
		panic(err)
	}
}

// Resolve 按名字解析类型元数据。
func (r *Registry) Resolve(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Names 返回所有注册名（顺序未定义），用于诊断。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	return out
}

// Reset 清空注册表。主要给测试用。
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*Entry)
}

func structTypeOf(prototype any) (reflect.Type, error) {
	var t reflect.Type
	if rt, ok := prototype.(reflect.Type); ok {
		t = rt
	} else {
		t = reflect.TypeOf(prototype)
	}
	if t == nil {
		return nil, fmt.Errorf("nil prototype")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("prototype must be a struct or struct pointer, got %s", t.Kind())
	}
	return t, nil
}

// TypeOf 获取类型 T 的 reflect.Type（泛型辅助函数）。
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// defaultRegistry 包级默认注册表。
var defaultRegistry = NewRegistry()

// Default 返回包级默认注册表。
func Default() *Registry { return defaultRegistry }

// Register 在默认注册表上注册。
func Register(name string, prototype any, opts ...Option) error {
	return defaultRegistry.Register(name, prototype, opts...)
}

// MustRegister 在默认注册表上注册，失败时 panic。
func MustRegister(name string, prototype any, opts ...Option) {
	defaultRegistry.MustRegister(name, prototype, opts...)
}
