//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"sync"

	"gocv.io/x/gocv"

	"urban-detect/internal/domain/entity"
)

// YOLODetector запускает экспортированную в ONNX модель YOLO через OpenCV DNN.
type YOLODetector struct {
	opts Options
	net  gocv.Net
	mu   sync.Mutex
}

// NewYOLODetector загружает сеть из ONNX-файла.
func NewYOLODetector(modelPath string, opts Options) (*YOLODetector, error) {
	if err := checkModelFile(modelPath); err != nil {
		return nil, err
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load network from %s", modelPath)
	}
	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		net.Close()
		return nil, fmt.Errorf("set backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		net.Close()
		return nil, fmt.Errorf("set target: %w", err)
	}

	return &YOLODetector{opts: opts, net: net}, nil
}

// Detect возвращает детекции после NMS в порядке убывания уверенности, как их отдаёт модель.
func (d *YOLODetector) Detect(ctx context.Context, imagePath string) ([]entity.RawDetection, error) {
	_ = ctx
	mat := gocv.IMRead(imagePath, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("failed to decode image")
	}

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(inputSize, inputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.mu.Lock()
	d.net.SetInput(blob, "")
	output := d.net.Forward("")
	d.mu.Unlock()
	defer output.Close()

	// Выход YOLOv8/11: [1, 4+классы, кандидаты]
	sizes := output.Size()
	if len(sizes) != 3 || sizes[1] <= 4 {
		return nil, fmt.Errorf("unexpected model output shape %v", sizes)
	}
	attrs, candidates := sizes[1], sizes[2]

	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read model output: %w", err)
	}

	threshold := float32(d.opts.ConfidenceThreshold)
	boxes := make([]image.Rectangle, 0)
	scores := make([]float32, 0)
	candidatesRaw := make([]entity.RawDetection, 0)
	for i := 0; i < candidates; i++ {
		bestClass, bestScore := -1, float32(0)
		for c := 4; c < attrs; c++ {
			if s := data[c*candidates+i]; s > bestScore {
				bestClass, bestScore = c-4, s
			}
		}
		if bestScore < threshold {
			continue
		}

		raw := boxToRaw(bestClass, float64(bestScore),
			float64(data[i]), float64(data[candidates+i]),
			float64(data[2*candidates+i]), float64(data[3*candidates+i]),
			mat.Cols(), mat.Rows())

		candidatesRaw = append(candidatesRaw, raw)
		boxes = append(boxes, image.Rect(int(raw.X1), int(raw.Y1), int(raw.X2), int(raw.Y2)))
		scores = append(scores, bestScore)
	}

	if len(boxes) == 0 {
		return []entity.RawDetection{}, nil
	}

	indices := gocv.NMSBoxes(boxes, scores, threshold, float32(d.opts.NMSThreshold))
	detections := make([]entity.RawDetection, 0, len(indices))
	for _, idx := range indices {
		detections = append(detections, candidatesRaw[idx])
	}
	return detections, nil
}

// Annotate рисует рамки с подписями и возвращает JPEG.
func (d *YOLODetector) Annotate(ctx context.Context, report *entity.DetectionReport) ([]byte, error) {
	_ = ctx
	mat := gocv.IMRead(report.SourceImagePath, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("failed to decode image")
	}

	for _, det := range report.Detections {
		c := classColor(det.ClassID)
		rect := image.Rect(det.Box.X1, det.Box.Y1, det.Box.X2, det.Box.Y2)
		gocv.Rectangle(&mat, rect, c, 2)

		label := fmt.Sprintf("%s %.2f", det.Label, det.Confidence)
		gocv.PutText(&mat, label, image.Pt(det.Box.X1, maxInt(det.Box.Y1-5, 12)), gocv.FontHersheySimplex, 0.5, c, 1)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close освобождает сеть
func (d *YOLODetector) Close() error {
	return d.net.Close()
}

// WindowViewer показывает изображение в окне OpenCV до нажатия клавиши.
type WindowViewer struct{}

func NewWindowViewer() *WindowViewer {
	return &WindowViewer{}
}

func (v *WindowViewer) Show(ctx context.Context, title, imagePath string) error {
	_ = ctx
	mat := gocv.IMRead(imagePath, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return errors.New("failed to decode image")
	}

	window := gocv.NewWindow(title)
	defer window.Close()
	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}

var palette = []color.RGBA{
	{R: 255, G: 56, B: 56, A: 255},
	{R: 255, G: 157, B: 151, A: 255},
	{R: 255, G: 112, B: 31, A: 255},
	{R: 72, G: 249, B: 10, A: 255},
}

func classColor(classID int) color.RGBA {
	if classID < 0 {
		classID = -classID
	}
	return palette[classID%len(palette)]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
