package app

import (
	"os"
	"strings"

	"urban-detect/internal/domain/entity"
)

const quitCommand = "quit"

// DefaultCommandTokens первые слова, по которым ввод считается вставленной командой, а не путём.
var DefaultCommandTokens = []string{
	"python", "python3", "py", "pip", "yolo", "go", "bash", "sh", "cmd", "powershell",
}

// PathResolver нормализует и проверяет путь, введённый оператором.
type PathResolver struct {
	commands map[string]struct{}
	exists   func(path string) bool
}

// NewPathResolver создаёт резолвер, проверяющий существование через файловую систему.
func NewPathResolver() *PathResolver {
	return NewPathResolverWith(DefaultCommandTokens, fileExists)
}

// NewPathResolverWith позволяет подменить список команд и проверку существования.
func NewPathResolverWith(commands []string, exists func(path string) bool) *PathResolver {
	set := make(map[string]struct{}, len(commands))
	for _, c := range commands {
		set[strings.ToLower(c)] = struct{}{}
	}
	return &PathResolver{commands: set, exists: exists}
}

// IsQuit сообщает, что оператор ввёл команду выхода.
func IsQuit(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), quitCommand)
}

// Resolve возвращает очищенный путь или *entity.PathError.
func (r *PathResolver) Resolve(raw string) (string, error) {
	path := unquote(strings.TrimSpace(raw))

	if r.looksLikeCommand(path) {
		return "", &entity.PathError{Path: path, Err: entity.ErrLooksLikeCommand}
	}

	if path == "" || !r.exists(path) {
		return "", &entity.PathError{Path: path, Err: entity.ErrPathNotFound}
	}

	return path, nil
}

func (r *PathResolver) looksLikeCommand(path string) bool {
	fields := strings.Fields(path)
	if len(fields) == 0 {
		return false
	}
	_, ok := r.commands[strings.ToLower(fields[0])]
	return ok
}

// unquote снимает ровно одну пару одинаковых кавычек по краям.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
