package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// распознавание
	ModelPath           string
	OutputDir           string
	ClassNamesFrom      string // data.yaml, из которого берутся названия классов
	ConfidenceThreshold float64
	NMSThreshold        float64

	// обучение
	DatasetPath    string
	ResultsProject string
	RunName        string
	YOLOBinary     string
	ForceCPU       bool

	// логи
	LogDir    string
	LogLevel  string
	LogStderr bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:      getEnv("MODEL_PATH", filepath.Join("urban_detection_results", "yolov11_urban_v13", "weights", "best.onnx")),
		OutputDir:      getEnv("OUTPUT_DIR", "."),
		ClassNamesFrom: os.Getenv("CLASS_NAMES_FROM"),
		DatasetPath:    getEnv("DATASET_PATH", filepath.Join("combined_dataset", "data.yaml")),
		ResultsProject: getEnv("RESULTS_PROJECT", "urban_detection_results"),
		RunName:        getEnv("RUN_NAME", "yolov11_urban_v1"),
		YOLOBinary:     getEnv("YOLO_BIN", "yolo"),
		LogDir:         getEnv("LOG_DIR", filepath.Join(".", "storage", "logs")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.ConfidenceThreshold, err = getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.25); err != nil {
		return nil, err
	}
	if cfg.NMSThreshold, err = getEnvAsFloat("NMS_THRESHOLD", 0.45); err != nil {
		return nil, err
	}
	if cfg.ForceCPU, err = getEnvAsBool("FORCE_CPU", false); err != nil {
		return nil, err
	}
	if cfg.LogStderr, err = getEnvAsBool("LOG_STDERR", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RunDir директория прогона обучения: <project>/<run>
func (c *Config) RunDir() string {
	return filepath.Join(c.ResultsProject, c.RunName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("parse %s: %v is outside [0, 1]", key, f)
	}
	return f, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
