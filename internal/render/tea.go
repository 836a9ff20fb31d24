package render

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// keyBuffer bounds queued key presses; extra presses are dropped.
const keyBuffer = 32

// Fallback size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ErrRendererStopped is returned by Render once the program has exited.
var ErrRendererStopped = errors.New("renderer stopped")

// frameMsg delivers a new frame to the program.
type frameMsg struct {
	frame layout.Frame
}

// teaModel displays the latest frame and forwards key presses.
type teaModel struct {
	frame  *layout.Frame
	width  int
	height int
	keys   chan<- string
}

func (m teaModel) Init() tea.Cmd {
	return nil
}

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		select {
		case m.keys <- msg.String():
		default:
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		f := msg.frame
		m.frame = &f
	}
	return m, nil
}

func (m teaModel) View() string {
	if m.frame == nil {
		return ""
	}
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	return Paint(*m.frame, w, h)
}

// TeaRenderer runs a bubbletea program on the alternate screen. bubbletea
// restores the terminal when the program exits, including on panic.
type TeaRenderer struct {
	program *tea.Program
	keys    chan string
	done    chan struct{}

	mu     sync.Mutex
	runErr error

	closeOnce sync.Once
}

// NewTeaRenderer starts the program on the controlling terminal.
func NewTeaRenderer() (*TeaRenderer, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("stdout is not a terminal")
	}
	return startTea(nil, nil, programOptions()...)
}

// programOptions configures the terminal program. Signals belong to the
// caller, which cancels the loop and closes the renderer itself.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}
}

// startTea launches the program. in and out override the terminal when set.
func startTea(in io.Reader, out io.Writer, opts ...tea.ProgramOption) (*TeaRenderer, error) {
	keys := make(chan string, keyBuffer)
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	r := &TeaRenderer{
		program: tea.NewProgram(teaModel{keys: keys}, opts...),
		keys:    keys,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(r.done)
		_, err := r.program.Run()
		r.mu.Lock()
		r.runErr = err
		r.mu.Unlock()
	}()

	return r, nil
}

// Render hands a frame to the program.
func (r *TeaRenderer) Render(f layout.Frame) error {
	select {
	case <-r.done:
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.runErr != nil {
			return r.runErr
		}
		return ErrRendererStopped
	default:
	}
	r.program.Send(frameMsg{frame: f})
	return nil
}

// Keys returns the key presses forwarded by the program.
func (r *TeaRenderer) Keys() KeySource {
	return NewChannelKeys(r.keys)
}

// Close quits the program and waits for the terminal to be restored.
// Safe to call more than once.
func (r *TeaRenderer) Close() error {
	r.closeOnce.Do(func() {
		r.program.Quit()
		<-r.done
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if errors.Is(r.runErr, tea.ErrProgramKilled) {
		return nil
	}
	return r.runErr
}
