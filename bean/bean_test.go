package bean

import "testing"

func TestDefinition_Builders(t *testing.T) {
	def := New("svc", "service").
		SetDirect("host", "localhost").
		SetRef("db", "mainDB")

	if def.Name != "svc" || def.Class != "service" {
		t.Errorf("got %+v", def)
	}
	if def.DirectAttributes["host"] != "localhost" {
		t.Error("SetDirect failed")
	}
	if def.RefAttributes["db"] != "mainDB" {
		t.Error("SetRef failed")
	}
	if def.AttributeCount() != 2 {
		t.Errorf("AttributeCount = %d", def.AttributeCount())
	}
}

func TestDefinition_SetOnZeroValue(t *testing.T) {
	var def Definition
	def.SetDirect("a", "1")
	def.SetRef("b", "x")
	if def.AttributeCount() != 2 {
		t.Error("setters should allocate maps on demand")
	}
}

func TestDeriveFactoryDefinition(t *testing.T) {
	outer := New("product", "productClass").
		SetDirect("color", "red").
		SetRef("dep", "other")
	outer.FactoryClass = "factoryClass"
	outer.FactoryMethod = "Produce"
	outer.AttributeOrder = []string{"color"}

	inner := DeriveFactoryDefinition(outer)

	if inner.Class != "factoryClass" {
		t.Errorf("derived class = %q", inner.Class)
	}
	if inner.Constructor || inner.FactoryClass != "" || inner.FactoryMethod != "" {
		t.Error("derived definition must select the allocation strategy")
	}
	if inner.DirectAttributes["color"] != "red" || inner.RefAttributes["dep"] != "other" {
		t.Error("attribute maps must carry over")
	}

	// 派生是拷贝，不共享可变状态
	inner.DirectAttributes["color"] = "blue"
	if outer.DirectAttributes["color"] != "red" {
		t.Error("derived maps must not alias the outer definition")
	}
}
