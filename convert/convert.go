package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrCannotConvert 表示字面量无法转换成目标类型。
// 上层用 errors.Is 识别这一类失败。
var ErrCannotConvert = errors.New("convert: cannot convert literal")

var durationType = reflect.TypeOf(time.Duration(0))

// Convert 把字符串字面量转换成目标类型的值。
// 支持 string、bool、各种宽度的整数和浮点、time.Duration，
// 以及这些标量的切片（逗号分隔）。
func Convert(target reflect.Type, literal string) (any, error) {
	v, err := convertValue(target, literal)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func convertValue(target reflect.Type, literal string) (reflect.Value, error) {
	// time.Duration 是 int64 的命名类型，要在整数分支之前处理
	if target == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(literal))
		if err != nil {
			return reflect.Value{}, fail(target, literal, err)
		}
		return reflect.ValueOf(d), nil
	}

	switch target.Kind() {
	case reflect.String:
		v := reflect.New(target).Elem()
		v.SetString(literal)
		return v, nil

	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(literal))
		if err != nil {
			return reflect.Value{}, fail(target, literal, err)
		}
		v := reflect.New(target).Elem()
		v.SetBool(b)
		return v, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(literal), 10, target.Bits())
		if err != nil {
			return reflect.Value{}, fail(target, literal, err)
		}
		v := reflect.New(target).Elem()
		v.SetInt(i)
		return v, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(strings.TrimSpace(literal), 10, target.Bits())
		if err != nil {
			return reflect.Value{}, fail(target, literal, err)
		}
		v := reflect.New(target).Elem()
		v.SetUint(u)
		return v, nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(literal), target.Bits())
		if err != nil {
			return reflect.Value{}, fail(target, literal, err)
		}
		v := reflect.New(target).Elem()
		v.SetFloat(f)
		return v, nil

	case reflect.Slice:
		return convertSlice(target, literal)

	case reflect.Interface:
		// interface{} 成员直接接收原始字符串
		if target.NumMethod() == 0 {
			return reflect.ValueOf(literal), nil
		}
	}

	return reflect.Value{}, fail(target, literal, nil)
}

func convertSlice(target reflect.Type, literal string) (reflect.Value, error) {
	if strings.TrimSpace(literal) == "" {
		return reflect.MakeSlice(target, 0, 0), nil
	}
	parts := strings.Split(literal, ",")
	out := reflect.MakeSlice(target, 0, len(parts))
	for _, part := range parts {
		elem, err := convertValue(target.Elem(), strings.TrimSpace(part))
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, elem)
	}
	return out, nil
}

func fail(target reflect.Type, literal string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %q -> %s: %v", ErrCannotConvert, literal, target, cause)
	}
	return fmt.Errorf("%w: %q -> %s (unsupported target kind %s)", ErrCannotConvert, literal, target, target.Kind())
}
