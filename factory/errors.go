package factory

import (
	"errors"
	"fmt"
)

// 错误分类。每一类都可以用 errors.Is 识别，
// 最终都包在 *ConfigurationError 里交给调用方，原因链保留。
var (
	// ErrTypeNotFound 目标类型、工厂类型或引用类型没有注册
	ErrTypeNotFound = errors.New("beans: type not registered")

	// ErrNoMatchingConstructor 没有参数个数匹配的构造函数
	ErrNoMatchingConstructor = errors.New("beans: no constructor matches attribute count")

	// ErrUnboundParameter 构造函数参数位置找不到对应属性
	ErrUnboundParameter = errors.New("beans: constructor parameter has no attribute")

	// ErrReferenceNotFound 引用属性按名查找不到实例
	ErrReferenceNotFound = errors.New("beans: reference not found")

	// ErrInvocation 反射调用失败（分配、成员赋值、函数/方法调用，
	// 包括被调用的用户代码 panic 或返回错误）
	ErrInvocation = errors.New("beans: invocation failed")
)

// ConfigurationError 构建失败的统一包装。
// Bean 是描述符的名字，Err 保留具体的失败原因。
type ConfigurationError struct {
	Bean string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("beans: bean %q: %v", e.Bean, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// wrapConfiguration 把底层错误包装成 ConfigurationError。
// 已经是 ConfigurationError 的错误原样返回，避免嵌套包装。
func wrapConfiguration(beanName string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return err
	}
	return &ConfigurationError{Bean: beanName, Err: err}
}
