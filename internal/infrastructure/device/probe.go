package device

import (
	"os"
	"os/exec"
	"strings"
)

// Probe определяет наличие CUDA-ускорителя по признакам драйвера NVIDIA.
type Probe struct {
	driverFile string
	lookPath   func(file string) (string, error)
	lookupEnv  func(key string) (string, bool)
}

func NewProbe() *Probe {
	return &Probe{
		driverFile: "/proc/driver/nvidia/version",
		lookPath:   exec.LookPath,
		lookupEnv:  os.LookupEnv,
	}
}

// AcceleratorAvailable true, если драйвер установлен и устройства не скрыты через CUDA_VISIBLE_DEVICES.
func (p *Probe) AcceleratorAvailable() bool {
	if v, ok := p.lookupEnv("CUDA_VISIBLE_DEVICES"); ok {
		if v = strings.TrimSpace(v); v == "" || v == "-1" {
			return false
		}
	}

	if _, err := os.Stat(p.driverFile); err == nil {
		return true
	}
	_, err := p.lookPath("nvidia-smi")
	return err == nil
}
