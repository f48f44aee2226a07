package entity

// RawDetection запись детекции в том виде, в каком её вернула модель.
// Координаты в пикселях исходного изображения, дробные.
type RawDetection struct {
	ClassID    int
	Confidence float64
	X1, Y1     float64
	X2, Y2     float64
}

// BoundingBox прямоугольник в целых пикселях (левый верхний и правый нижний углы)
type BoundingBox struct {
	X1, Y1 int
	X2, Y2 int
}

// Detection один найденный объект с подписью класса
type Detection struct {
	ClassID    int
	Label      string
	Confidence float64
	Box        BoundingBox
	Width      int // усечённая разность дробных координат, а не разность усечённых углов
	Height     int
}

// DetectionReport итог одного вызова модели для одного изображения.
type DetectionReport struct {
	SourceImagePath string
	Detections      []Detection
	TotalCount      int
}

// Empty сообщает, что на изображении ничего не найдено
func (r *DetectionReport) Empty() bool {
	return r.TotalCount == 0
}
