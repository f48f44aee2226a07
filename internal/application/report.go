package app

import (
	"fmt"
	"strings"

	"urban-detect/internal/domain/entity"
)

const (
	msgNoDetections = "No objects detected in this image"
	reportRule      = "--------------------------------------------------"
)

// Renderer форматирует отчёт для консоли. Без ввода-вывода.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render возвращает один и тот же текст для одинаковых отчётов.
func (r *Renderer) Render(report *entity.DetectionReport) string {
	if report == nil || report.Empty() {
		return msgNoDetections + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d detections:\n", report.TotalCount)
	b.WriteString(reportRule + "\n")

	for i, d := range report.Detections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ToUpper(d.Label))
		fmt.Fprintf(&b, "   Confidence: %.3f (%.1f%%)\n", d.Confidence, d.Confidence*100)
		fmt.Fprintf(&b, "   Bounding Box: [%d, %d, %d, %d]\n", d.Box.X1, d.Box.Y1, d.Box.X2, d.Box.Y2)
		fmt.Fprintf(&b, "   Size: %d x %d pixels\n", d.Width, d.Height)
		b.WriteString("\n")
	}

	return b.String()
}
