package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gocrud/beans/bean"
	"github.com/gocrud/beans/container"
)

// 描述符加载层：把 YAML/JSON 文档解析成内存里的 bean.Definition。
// 这是核心引擎之外的便捷层，描述符也完全可以由代码直接构造。

// Document 描述符文档
type Document struct {
	Beans []Bean `yaml:"beans"`
}

// Bean 文档里的单个 bean 条目
type Bean struct {
	Name          string            `yaml:"name"`
	Class         string            `yaml:"class"`
	Constructor   bool              `yaml:"constructor"`
	FactoryClass  string            `yaml:"factoryClass"`
	FactoryMethod string            `yaml:"factoryMethod"`
	Attributes    map[string]string `yaml:"attributes"`
	Refs          map[string]string `yaml:"refs"`
	Order         []string          `yaml:"order"`
}

// Parse 解析描述符文档。YAML 解析器同时兼容 JSON。
func Parse(data []byte) ([]*bean.Definition, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse descriptors: %w", err)
	}

	defs := make([]*bean.Definition, 0, len(doc.Beans))
	for i, b := range doc.Beans {
		if b.Name == "" {
			return nil, fmt.Errorf("config: bean #%d has no name", i)
		}
		def := bean.New(b.Name, b.Class)
		def.Constructor = b.Constructor
		def.FactoryClass = b.FactoryClass
		def.FactoryMethod = b.FactoryMethod
		for k, v := range b.Attributes {
			def.DirectAttributes[k] = v
		}
		for k, v := range b.Refs {
			def.RefAttributes[k] = v
		}
		def.AttributeOrder = append(def.AttributeOrder, b.Order...)
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadFile 从文件加载描述符文档。
func LoadFile(path string) ([]*bean.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Apply 把一组描述符注册进容器，遇到第一个错误即停。
func Apply(c *container.Container, defs []*bean.Definition) error {
	for _, def := range defs {
		if err := c.Register(def); err != nil {
			return err
		}
	}
	return nil
}
