package entity

// Device устройство, на котором идёт обучение
type Device string

const (
	DeviceCUDA Device = "cuda" // ускоритель
	DeviceCPU  Device = "cpu"
)

// CheckpointReference ссылка на чекпоинт, с которого возобновляется обучение
type CheckpointReference struct {
	Path   string // абсолютный путь до last.pt
	Exists bool
}

// ResumeConfig параметры возобновления обучения. После создания не меняется.
type ResumeConfig struct {
	CheckpointPath        string  `yaml:"model" validate:"required"`
	DatasetDescriptorPath string  `yaml:"data" validate:"required"`
	Epochs                int     `yaml:"epochs" validate:"gt=0"`
	ImageSize             int     `yaml:"imgsz" validate:"gt=0"`
	BatchSize             int     `yaml:"batch" validate:"gt=0"`
	InitialLearningRate   float64 `yaml:"lr0" validate:"gt=0,lte=1"`
	Device                Device  `yaml:"device" validate:"oneof=cuda cpu"`
	Resume                bool    `yaml:"resume"`
	OutputProjectDir      string  `yaml:"project" validate:"required"`
	OutputRunName         string  `yaml:"name" validate:"required"`
	WorkerCount           int     `yaml:"workers" validate:"gte=0"`
	Cache                 bool    `yaml:"cache"`
	MixedPrecision        bool    `yaml:"amp"`
}

// TrainingOutcome результат успешного обучения
type TrainingOutcome struct {
	OutputDir string // куда модель сохранила веса и графики
}
