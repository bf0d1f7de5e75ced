package factory

import (
	"fmt"
	"reflect"

	"github.com/gocrud/beans/bean"
)

// methodProducer 工厂方法策略：调用零参操作产出实例。
//
// 静态形态：工厂类型上注册的具名生产函数，直接调用，不做属性绑定
// （描述符上的属性被视为属于产物自己的描述符，不属于工厂）。
//
// 实例形态：工厂结构体指针上的零参导出方法。每次 create 先通过
// 派生子描述符的分配策略新建并绑定一个工厂实例，再在其上调用方法。
type methodProducer struct {
	// 静态形态
	fn reflect.Value

	// 实例形态
	methodIndex int
	delegate    *allocationProducer
}

func newMethodProducer(def *bean.Definition, env Environment) (*methodProducer, error) {
	entry, err := env.resolveType(def.FactoryClass)
	if err != nil {
		return nil, err
	}

	if fn, ok := entry.Func(def.FactoryMethod); ok {
		if fn.Type().NumIn() != 0 {
			return nil, fmt.Errorf("factory func %q on %q must take no arguments", def.FactoryMethod, def.FactoryClass)
		}
		return &methodProducer{fn: fn}, nil
	}

	pt := reflect.PointerTo(entry.Type())
	m, ok := pt.MethodByName(def.FactoryMethod)
	if !ok {
		return nil, fmt.Errorf("factory method %q not found on %q", def.FactoryMethod, def.FactoryClass)
	}
	if m.Type.NumIn() != 1 { // 只有接收者
		return nil, fmt.Errorf("factory method %q on %q must take no arguments", def.FactoryMethod, def.FactoryClass)
	}

	delegate, err := newAllocationProducer(bean.DeriveFactoryDefinition(def), env)
	if err != nil {
		return nil, err
	}
	return &methodProducer{methodIndex: m.Index, delegate: delegate}, nil
}

func (p *methodProducer) create() (any, error) {
	if p.delegate == nil {
		results, err := safeCall(p.fn, nil)
		if err != nil {
			return nil, err
		}
		return firstResult(results)
	}

	instance, err := p.delegate.create()
	if err != nil {
		return nil, err
	}
	results, err := safeCall(reflect.ValueOf(instance).Method(p.methodIndex), nil)
	if err != nil {
		return nil, err
	}
	return firstResult(results)
}
