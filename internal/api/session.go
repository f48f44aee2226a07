package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "urban-detect/internal/application"
	"urban-detect/internal/domain/entity"
	"urban-detect/internal/domain/port"
)

const (
	msgBanner = `Urban Detection - Single Image Predictor
============================================================
Just type the image filename if it's in the current folder (e.g. 'image.png')
Or provide a full path for images elsewhere`

	msgPrompt         = "\nEnter image path (or 'quit' to exit): "
	msgGoodbye        = "Goodbye!"
	msgLooksLikeCmd   = "That looks like a command, not an image path. Try again!"
	msgNotFound       = "Image not found: %s\nPlease check the path and try again\n"
	msgProcessing     = "Processing: %s\n"
	msgInferenceError = "Error processing image: %v\n"
	msgSaved          = "Annotated image saved as: %s\nCheck your output folder: %s\n"
	msgSaveError      = "Could not save image: %v\nBut detection results are shown above!\n"
	msgDisplayPrompt  = "Display image? (y/n): "
	msgSeparator      = "\n============================================================"
)

// Session интерактивный цикл: ввод пути -> детекция -> отчёт -> сохранение.
// Изображения обрабатываются строго по одному.
type Session struct {
	in        *bufio.Reader
	readErr   error
	out       io.Writer
	resolver  *app.PathResolver
	detection *app.DetectionService
	renderer  *app.Renderer
	persister *app.Persister
	viewer    port.ImageViewer
	log       *logrus.Entry
	state     *entity.Session
}

// NewSession создаёт сессию. при viewer == nil шаг показа пропускается.
func NewSession(in io.Reader, out io.Writer, resolver *app.PathResolver, detection *app.DetectionService,
	renderer *app.Renderer, persister *app.Persister, viewer port.ImageViewer, log *logrus.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		resolver:  resolver,
		detection: detection,
		renderer:  renderer,
		persister: persister,
		viewer:    viewer,
		log:       log.WithField("session_id", id),
		state:     entity.NewSession(id),
	}
}

// State текущее состояние сессии
func (s *Session) State() *entity.Session {
	return s.state
}

// Run крутит цикл до "quit" или конца ввода. Ошибки отдельных изображений сессию не прерывают.
func (s *Session) Run(ctx context.Context) error {
	s.println(msgBanner)
	s.log.Info("session started")

	for !s.state.Terminated() {
		s.state.SetState(entity.StateAwaitingInput)
		s.print(msgPrompt)

		line, ok := s.readLine()
		if !ok || app.IsQuit(line) {
			s.println(msgGoodbye)
			s.state.SetState(entity.StateTerminated)
			break
		}

		s.handleLine(ctx, line)
	}

	s.log.WithField("processed", s.state.Processed).Info("session finished")
	if s.readErr != nil {
		return fmt.Errorf("read input: %w", s.readErr)
	}
	return nil
}

// handleLine обрабатывает одну строку оператора
func (s *Session) handleLine(ctx context.Context, line string) {
	s.state.SetState(entity.StateResolving)
	path, err := s.resolver.Resolve(line)
	if err != nil {
		s.reportPathError(err)
		return
	}

	s.state.SetState(entity.StateInferring)
	s.printf(msgProcessing, filepath.Base(path))
	report, err := s.detection.Detect(ctx, path)
	if err != nil {
		s.log.WithFields(logrus.Fields{"image": path, "error": err}).Error("inference failed")
		s.printf(msgInferenceError, err)
		s.println(msgSeparator)
		return
	}

	s.state.SetState(entity.StateReporting)
	s.print(s.renderer.Render(report))
	s.state.Processed++
	s.log.WithFields(logrus.Fields{"image": path, "detections": report.TotalCount}).Info("image processed")

	s.state.SetState(entity.StatePersisting)
	out, err := s.persister.Persist(ctx, report)
	if err != nil {
		s.log.WithFields(logrus.Fields{"image": path, "error": err}).Warn("annotated image not saved")
		s.printf(msgSaveError, err)
	} else {
		s.printf(msgSaved, out, s.persister.OutputDir())
		s.offerDisplay(ctx, out)
	}

	s.println(msgSeparator)
}

func (s *Session) reportPathError(err error) {
	var pathErr *entity.PathError
	if !errors.As(err, &pathErr) {
		s.printf(msgNotFound, err)
		return
	}

	s.log.WithFields(logrus.Fields{"input": pathErr.Path, "error": pathErr.Err}).Debug("input rejected")
	if errors.Is(err, entity.ErrLooksLikeCommand) {
		s.println(msgLooksLikeCmd)
		return
	}
	s.printf(msgNotFound, pathErr.Path)
}

// offerDisplay показывает картинку по желанию оператора; ошибки показа глотаются.
func (s *Session) offerDisplay(ctx context.Context, imagePath string) {
	if s.viewer == nil {
		return
	}

	s.print(msgDisplayPrompt)
	answer, ok := s.readLine()
	if !ok || strings.ToLower(strings.TrimSpace(answer)) != "y" {
		return
	}

	title := "Detections: " + filepath.Base(imagePath)
	if err := s.viewer.Show(ctx, title, imagePath); err != nil {
		s.log.WithFields(logrus.Fields{"image": imagePath, "error": err}).Debug("display failed")
	}
}

// readLine читает строку любой длины. Последняя строка без перевода строки тоже засчитывается.
func (s *Session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
