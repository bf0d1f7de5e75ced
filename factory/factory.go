package factory

import (
	"github.com/gocrud/beans/bean"
)

// producer 是三种互斥的构建策略的共同形态。
// 策略在 New 时解析一次，之后不可变，create 可以被并发调用。
type producer interface {
	create() (any, error)
}

// ObjectFactory 按描述符构建实例。
// 策略解析在构造时急切完成（快速失败），Create 可重复、并发调用，
// 每次调用产出一个全新的实例。
type ObjectFactory struct {
	def      *bean.Definition
	producer producer
}

// New 检查描述符并解析出唯一的一种构建策略：
//
//	Constructor 为 true        -> 构造函数策略
//	否则 FactoryClass 为空     -> 分配策略
//	否则                       -> 工厂方法策略
//
// 任何类型/成员标识解析失败都包装成 *ConfigurationError 返回，不吞。
func New(def *bean.Definition, env Environment) (*ObjectFactory, error) {
	env = env.normalize()

	var p producer
	var err error
	switch {
	case def.Constructor:
		p, err = newConstructorProducer(def, env)
	case def.FactoryClass == "":
		p, err = newAllocationProducer(def, env)
	default:
		p, err = newMethodProducer(def, env)
	}
	if err != nil {
		return nil, wrapConfiguration(def.Name, err)
	}

	return &ObjectFactory{def: def, producer: p}, nil
}

// Create 执行已解析的策略，产出一个初始化完毕的实例。
// 失败时不返回半成品。
func (f *ObjectFactory) Create() (any, error) {
	instance, err := f.producer.create()
	if err != nil {
		return nil, wrapConfiguration(f.def.Name, err)
	}
	return instance, nil
}

// Definition 返回这个工厂对应的描述符。
func (f *ObjectFactory) Definition() *bean.Definition { return f.def }
