package factory

import (
	"fmt"

	"github.com/gocrud/beans/logging"
	"github.com/gocrud/beans/types"
)

// TypeResolver 类型标识解析协作方：按名字解析已注册的类型。
type TypeResolver interface {
	Resolve(name string) (*types.Entry, bool)
}

// ReferenceResolver 引用解析协作方：按名字查找已构建好的实例。
type ReferenceResolver interface {
	Lookup(name string) (any, error)
}

// Environment 构建引擎消费的协作方集合。
// 零值可用：缺省时类型走默认注册表、引用查找总是失败、日志丢弃。
type Environment struct {
	Types  TypeResolver
	Refs   ReferenceResolver
	Logger logging.Logger
}

func (e Environment) normalize() Environment {
	if e.Types == nil {
		e.Types = types.Default()
	}
	if e.Refs == nil {
		e.Refs = emptyRefs{}
	}
	if e.Logger == nil {
		e.Logger = logging.Nop()
	}
	return e
}

type emptyRefs struct{}

func (emptyRefs) Lookup(name string) (any, error) {
	return nil, fmt.Errorf("%w: %q (no reference resolver configured)", ErrReferenceNotFound, name)
}

func (e Environment) resolveType(name string) (*types.Entry, error) {
	entry, ok := e.Types.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}
	return entry, nil
}
