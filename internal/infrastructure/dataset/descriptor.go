package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"urban-detect/internal/domain/entity"
)

// Descriptor описание датасета в формате data.yaml (ultralytics).
type Descriptor struct {
	Path  string `yaml:"path,omitempty"`
	Train string `yaml:"train"`
	Val   string `yaml:"val"`
	Test  string `yaml:"test,omitempty"`
	NC    int    `yaml:"nc,omitempty"`
	Names Names  `yaml:"names"`
}

// Names классы датасета. В data.yaml встречаются и список, и словарь id -> имя.
type Names map[int]string

func (n *Names) UnmarshalYAML(node *yaml.Node) error {
	out := make(Names)
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		for i, name := range list {
			out[i] = name
		}
	case yaml.MappingNode:
		var m map[int]string
		if err := node.Decode(&m); err != nil {
			return err
		}
		for id, name := range m {
			out[id] = name
		}
	default:
		return fmt.Errorf("names: unsupported yaml node kind %d", node.Kind)
	}
	*n = out
	return nil
}

// Load читает и проверяет data.yaml.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset descriptor: %w", err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse dataset descriptor %s: %w", path, err)
	}

	if len(d.Names) == 0 {
		return nil, fmt.Errorf("dataset descriptor %s: no class names", path)
	}
	if d.NC != 0 && d.NC != len(d.Names) {
		return nil, fmt.Errorf("dataset descriptor %s: nc=%d but %d names", path, d.NC, len(d.Names))
	}
	return &d, nil
}

// Catalog каталог классов из names
func (d *Descriptor) Catalog() entity.ClassCatalog {
	return entity.NewClassCatalog(d.Names)
}
