package factory

import (
	"fmt"
	"reflect"
)

// Setter 把一个值应用到目标实例的具名成员上。
// 两种实现：字段直写和单参数 SetX 修改器方法。
// Setter 自身不携带可变状态，可被并发复用。
type Setter interface {
	// Type 返回成员声明接受的类型
	Type() reflect.Type

	// Set 把 value 应用到 instance（指向结构体的指针值）上
	Set(instance reflect.Value, value any) error
}

// FallbackSetter 目标类型可以实现的逃生舱能力：
// 接收成员索引里找不到的 (属性名, 字面量) 对。
// 只对字面量属性生效，引用属性没有回退路径。
type FallbackSetter interface {
	SetAttribute(name, value string) error
}

// fieldSetter 字段直写
type fieldSetter struct {
	index []int
	ftype reflect.Type
}

func (s *fieldSetter) Type() reflect.Type { return s.ftype }

func (s *fieldSetter) Set(instance reflect.Value, value any) error {
	v, err := coerce(value, s.ftype)
	if err != nil {
		return err
	}
	instance.Elem().FieldByIndex(s.index).Set(v)
	return nil
}

// methodSetter 单参数修改器方法
type methodSetter struct {
	index int
	atype reflect.Type
}

func (s *methodSetter) Type() reflect.Type { return s.atype }

func (s *methodSetter) Set(instance reflect.Value, value any) error {
	v, err := coerce(value, s.atype)
	if err != nil {
		return err
	}
	_, err = safeCall(instance.Method(s.index), []reflect.Value{v})
	return err
}

// coerce 把任意值变成可赋给 target 的 reflect.Value。
// 只做可赋值性检查，不做隐式转换：字面量在到达这里之前已经转换完毕。
func coerce(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch target.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(target), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: cannot assign nil to %s", ErrInvocation, target)
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(target) {
		return reflect.Value{}, fmt.Errorf("%w: cannot assign %s to %s", ErrInvocation, v.Type(), target)
	}
	return v, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// safeCall 调用函数/方法，把 panic 收敛成错误。
func safeCall(fn reflect.Value, args []reflect.Value) (results []reflect.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			results = nil
			err = fmt.Errorf("%w: panic: %v", ErrInvocation, rec)
		}
	}()
	return fn.Call(args), nil
}

// firstResult 解释调用结果：最后一个返回值若是非 nil error 则失败，
// 否则返回第一个值。
func firstResult(results []reflect.Value) (any, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no return values", ErrInvocation)
	}
	if len(results) > 1 {
		last := results[len(results)-1]
		if last.Type().Implements(errorType) && !last.IsNil() {
			return nil, fmt.Errorf("%w: %v", ErrInvocation, last.Interface().(error))
		}
	}
	return results[0].Interface(), nil
}
