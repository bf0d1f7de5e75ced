package bean

// Definition 描述如何构建一个 bean（声明式元数据）。
// 它由外部配置层（或调用方代码）填充，核心引擎只读不改。
type Definition struct {
	// Name bean 的标识，用于按名引用和诊断输出
	Name string

	// Class 目标类型在类型注册表中的名字
	Class string

	// Constructor 为 true 时选择构造函数策略
	Constructor bool

	// FactoryClass / FactoryMethod 可选的外部生产者。
	// 仅当 Constructor 为 false 且 FactoryClass 非空时选择工厂方法策略。
	FactoryClass  string
	FactoryMethod string

	// DirectAttributes 属性名 -> 字面量字符串值（需要类型转换）
	DirectAttributes map[string]string

	// RefAttributes 属性名 -> 另一个 bean 的名字（按名查找解析）
	RefAttributes map[string]string

	// AttributeOrder 属性顺序，仅对构造函数策略有意义：
	// 它声明了参数的位置顺序。
	AttributeOrder []string
}

// New 创建一个空的 Definition。
func New(name, class string) *Definition {
	return &Definition{
		Name:             name,
		Class:            class,
		DirectAttributes: make(map[string]string),
		RefAttributes:    make(map[string]string),
	}
}

// SetDirect 设置一个字面量属性并返回 Definition 以便链式调用。
func (d *Definition) SetDirect(name, value string) *Definition {
	if d.DirectAttributes == nil {
		d.DirectAttributes = make(map[string]string)
	}
	d.DirectAttributes[name] = value
	return d
}

// SetRef 设置一个引用属性并返回 Definition 以便链式调用。
func (d *Definition) SetRef(name, ref string) *Definition {
	if d.RefAttributes == nil {
		d.RefAttributes = make(map[string]string)
	}
	d.RefAttributes[name] = ref
	return d
}

// AttributeCount 返回两类属性的总数（构造函数策略按此匹配参数个数）。
func (d *Definition) AttributeCount() int {
	return len(d.DirectAttributes) + len(d.RefAttributes)
}

// DeriveFactoryDefinition 为非静态工厂方法策略派生子描述符：
// 目标换成工厂类型本身，走分配策略，并携带外层描述符的两个属性表。
// 这是一个显式的、有名字的变换，而不是隐式复用同一份可变状态。
func DeriveFactoryDefinition(outer *Definition) *Definition {
	inner := New(outer.Name+"#factory", outer.FactoryClass)
	for k, v := range outer.DirectAttributes {
		inner.DirectAttributes[k] = v
	}
	for k, v := range outer.RefAttributes {
		inner.RefAttributes[k] = v
	}
	return inner
}
