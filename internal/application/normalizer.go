package app

import "urban-detect/internal/domain/entity"

// Normalizer приводит сырые детекции модели к отчёту.
type Normalizer struct {
	catalog entity.ClassCatalog
}

// NewNormalizer создаёт нормализатор с переданным каталогом классов.
func NewNormalizer(catalog entity.ClassCatalog) *Normalizer {
	return &Normalizer{catalog: catalog}
}

// Normalize сохраняет порядок модели, ничего не отбрасывает и не сортирует.
// Координаты и размеры отбрасывают дробную часть (усечение к нулю, не округление).
func (n *Normalizer) Normalize(sourcePath string, raw []entity.RawDetection) *entity.DetectionReport {
	detections := make([]entity.Detection, 0, len(raw))
	for _, r := range raw {
		detections = append(detections, entity.Detection{
			ClassID:    r.ClassID,
			Label:      n.catalog.Label(r.ClassID),
			Confidence: r.Confidence,
			Box: entity.BoundingBox{
				X1: int(r.X1),
				Y1: int(r.Y1),
				X2: int(r.X2),
				Y2: int(r.Y2),
			},
			Width:  int(r.X2 - r.X1),
			Height: int(r.Y2 - r.Y1),
		})
	}

	return &entity.DetectionReport{
		SourceImagePath: sourcePath,
		Detections:      detections,
		TotalCount:      len(detections),
	}
}
