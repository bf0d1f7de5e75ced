package factory

import (
	"fmt"
	"reflect"

	"github.com/gocrud/beans/bean"
	"github.com/gocrud/beans/convert"
	"github.com/gocrud/beans/logging"
)

// allocationProducer 分配策略：零参实例化目标类型，
// 然后把描述符里声明的每一个属性绑定上去。
type allocationProducer struct {
	def     *bean.Definition
	env     Environment
	rtype   reflect.Type
	members map[string]Setter
}

func newAllocationProducer(def *bean.Definition, env Environment) (*allocationProducer, error) {
	entry, err := env.resolveType(def.Class)
	if err != nil {
		return nil, err
	}
	return &allocationProducer{
		def:     def,
		env:     env,
		rtype:   entry.Type(),
		members: mapMembers(entry.Type()),
	}, nil
}

func (p *allocationProducer) create() (any, error) {
	instance := reflect.New(p.rtype)
	if err := p.bind(instance); err != nil {
		return nil, err
	}
	return instance.Interface(), nil
}

// bind 应用全部字面量属性和引用属性。
// 索引里找不到的属性不致命：字面量先试逃生舱能力，
// 否则记一条告警后跳过；引用属性没有回退路径，直接告警跳过。
func (p *allocationProducer) bind(instance reflect.Value) error {
	for name, literal := range p.def.DirectAttributes {
		setter, ok := p.members[name]
		if ok {
			value, err := convert.Convert(setter.Type(), literal)
			if err != nil {
				return fmt.Errorf("attribute %q: %w", name, err)
			}
			if err := setter.Set(instance, value); err != nil {
				return fmt.Errorf("attribute %q: %w", name, err)
			}
			continue
		}
		if fallback, ok := instance.Interface().(FallbackSetter); ok {
			if err := fallback.SetAttribute(name, literal); err != nil {
				return fmt.Errorf("%w: fallback attribute %q: %v", ErrInvocation, name, err)
			}
			continue
		}
		p.env.Logger.Warn("unknown attribute, skipped",
			logging.F("bean", p.def.Name), logging.F("attribute", name))
	}

	for name, ref := range p.def.RefAttributes {
		setter, ok := p.members[name]
		if !ok {
			p.env.Logger.Warn("unknown ref attribute, skipped",
				logging.F("bean", p.def.Name), logging.F("attribute", name))
			continue
		}
		value, err := p.env.Refs.Lookup(ref)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		if err := setter.Set(instance, value); err != nil {
			return fmt.Errorf("attribute %q (ref %q): %w", name, ref, err)
		}
	}

	return nil
}
