package entity

import "fmt"

// ClassCatalog неизменяемое соответствие class_id -> название класса.
type ClassCatalog struct {
	labels map[int]string
}

// NewClassCatalog копирует переданную карту, дальнейшие изменения исходной карты на каталог не влияют.
func NewClassCatalog(labels map[int]string) ClassCatalog {
	copied := make(map[int]string, len(labels))
	for id, label := range labels {
		copied[id] = label
	}
	return ClassCatalog{labels: copied}
}

// DefaultClassCatalog классы городской инфраструктуры, на которых обучена модель
func DefaultClassCatalog() ClassCatalog {
	return NewClassCatalog(map[int]string{
		0: "pothole",
		1: "damaged_streetlight",
		2: "water_puddle",
		3: "garbage",
	})
}

// Label возвращает название класса; для неизвестного id возвращается "class_<id>".
func (c ClassCatalog) Label(classID int) string {
	if label, ok := c.labels[classID]; ok {
		return label
	}
	return fmt.Sprintf("class_%d", classID)
}

// Len количество известных классов
func (c ClassCatalog) Len() int {
	return len(c.labels)
}
