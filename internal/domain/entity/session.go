package entity

// SessionState состояние интерактивной сессии распознавания
type SessionState string

const (
	StateAwaitingInput SessionState = "awaiting_input" // Ожидание пути к изображению
	StateResolving     SessionState = "resolving"      // Проверка пути
	StateInferring     SessionState = "inferring"      // Запуск модели
	StateReporting     SessionState = "reporting"      // Вывод результатов
	StatePersisting    SessionState = "persisting"     // Сохранение размеченного изображения
	StateTerminated    SessionState = "terminated"     // Сессия завершена
)

// Session представляет одну интерактивную сессию оператора
type Session struct {
	ID        string       // идентификатор для логов
	State     SessionState // текущее состояние
	Processed int          // сколько изображений дошло до отчёта
}

// NewSession создаёт сессию в начальном состоянии
func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: StateAwaitingInput,
	}
}

// SetState обновляет состояние сессии. Из Terminated выхода нет.
func (s *Session) SetState(state SessionState) {
	if s.State == StateTerminated {
		return
	}
	s.State = state
}

// Terminated сообщает, завершена ли сессия
func (s *Session) Terminated() bool {
	return s.State == StateTerminated
}
