// Package beans 是一个配置驱动的对象构建引擎：
// 给定声明式的 bean 描述符（目标类型、构建策略、字面量/引用属性和属性顺序），
// 产出初始化完毕的实例，调用方不写任何装配代码。
// 这是一个轻量依赖注入容器的运行时核心。
package beans

import (
	"github.com/gocrud/beans/bean"
	"github.com/gocrud/beans/container"
)

// New 创建一个新的容器
// 这是使用本库的入口点
func New(opts ...container.Option) *container.Container {
	return container.New(opts...)
}

// NewDefinition 创建一个空的 bean 描述符
func NewDefinition(name, class string) *bean.Definition {
	return bean.New(name, class)
}
