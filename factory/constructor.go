package factory

import (
	"fmt"
	"reflect"

	"github.com/gocrud/beans/bean"
	"github.com/gocrud/beans/convert"
)

// constructorProducer 构造函数策略：按位置顺序传入转换/解析后的参数，
// 调用单个构造函数产出实例。
type constructorProducer struct {
	def    *bean.Definition
	env    Environment
	ctor   reflect.Value
	params []reflect.Type
}

func newConstructorProducer(def *bean.Definition, env Environment) (*constructorProducer, error) {
	entry, err := env.resolveType(def.Class)
	if err != nil {
		return nil, err
	}

	// 只按参数个数匹配，取注册顺序里第一个命中的。
	// 同参数个数的多个构造函数会产生任意选择，这是记录在案的已知行为。
	want := def.AttributeCount()
	var found reflect.Value
	for _, c := range entry.Constructors() {
		if c.Type().NumIn() == want {
			found = c
			break
		}
	}
	if !found.IsValid() {
		return nil, fmt.Errorf("%w: %q needs a %d-parameter constructor", ErrNoMatchingConstructor, def.Class, want)
	}

	params := make([]reflect.Type, found.Type().NumIn())
	for i := range params {
		params[i] = found.Type().In(i)
	}
	if len(def.AttributeOrder) != len(params) {
		return nil, fmt.Errorf("%w: attribute order lists %d names, constructor needs %d",
			ErrUnboundParameter, len(def.AttributeOrder), len(params))
	}

	return &constructorProducer{def: def, env: env, ctor: found, params: params}, nil
}

func (p *constructorProducer) create() (any, error) {
	args := make([]reflect.Value, len(p.params))
	for i, name := range p.def.AttributeOrder {
		value, err := p.argument(p.params[i], name)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}

	results, err := safeCall(p.ctor, args)
	if err != nil {
		return nil, err
	}
	return firstResult(results)
}

// argument 解析一个位置参数：字面量属性做类型转换，
// 否则按引用属性查找；两边都没有就是未绑定参数。
func (p *constructorProducer) argument(param reflect.Type, name string) (reflect.Value, error) {
	if literal, ok := p.def.DirectAttributes[name]; ok {
		value, err := convert.Convert(param, literal)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("parameter %q: %w", name, err)
		}
		return coerce(value, param)
	}
	if ref, ok := p.def.RefAttributes[name]; ok {
		value, err := p.env.Refs.Lookup(ref)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("parameter %q: %w", name, err)
		}
		return coerce(value, param)
	}
	return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnboundParameter, name)
}
