package factory

import (
	"reflect"
	"strings"
	"unicode"
)

// 成员索引：属性名 -> Setter，每个目标类型构建一次，之后只读共享。
//
// 构建规则（对应沿继承链的成员发现，Go 里继承链就是内嵌链）：
//  1. 先索引指针类型的方法集里所有单参数 Set 前缀修改器，
//     键是去掉前缀后再去首字母大写化的剩余部分。
//     方法集已经按 Go 的提升规则做了"最派生者优先"的遮蔽处理。
//  2. 再按内嵌深度从浅到深登记导出字段（键同样做去大写化），
//     已被占用的名字不覆盖 —— 修改器优先于字段，浅层声明优先于深层。
//
// 未导出成员永远不进索引：没有运行时可见性放宽，这是编译期契约。
func mapMembers(target reflect.Type) map[string]Setter {
	members := make(map[string]Setter)

	pt := reflect.PointerTo(target)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		name := m.Name
		// NumIn 含接收者
		if len(name) > 3 && strings.HasPrefix(name, "Set") && m.Type.NumIn() == 2 {
			key := decapitalize(name[3:])
			if _, claimed := members[key]; claimed {
				continue
			}
			members[key] = &methodSetter{index: m.Index, atype: m.Type.In(1)}
		}
	}

	// 逐层展开内嵌字段
	type level struct {
		typ   reflect.Type
		index []int
	}
	current := []level{{typ: target}}
	for len(current) > 0 {
		var next []level
		for _, lv := range current {
			for i := 0; i < lv.typ.NumField(); i++ {
				f := lv.typ.Field(i)
				index := append(append([]int{}, lv.index...), i)

				if f.Anonymous {
					// 内嵌字段本身未导出也要下钻：
					// 经由它提升的导出成员依然可写
					et := f.Type
					if et.Kind() == reflect.Ptr {
						et = et.Elem()
					}
					if et.Kind() == reflect.Struct && f.Type.Kind() != reflect.Ptr {
						// 指针内嵌需要判空解引用，描述符驱动的分配不会初始化它，跳过
						next = append(next, level{typ: et, index: index})
					}
					continue
				}
				if f.PkgPath != "" {
					continue
				}

				key := decapitalize(f.Name)
				if _, claimed := members[key]; claimed {
					continue
				}
				members[key] = &fieldSetter{index: index, ftype: f.Type}
			}
		}
		current = next
	}

	return members
}

// decapitalize 仿 JavaBeans 规则：首字母小写化，
// 但前两个字母都大写时保持原样（URL 不变成 uRL）。
func decapitalize(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return name
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
