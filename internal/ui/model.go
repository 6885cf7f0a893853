package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nconklindev/menuconv/internal/types"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateProcessing state = iota
	stateComplete
	stateError
)

// Runner performs one conversion, reporting progress on progressChan.
type Runner interface {
	Run(progressChan chan<- float64) (*types.ConversionResult, error)
}

type Model struct {
	state        state
	runner       Runner
	inputFile    string
	result       *types.ConversionResult
	err          error
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan conversionResultMsg
}

type conversionResultMsg struct {
	result *types.ConversionResult
	err    error
}

type conversionCompleteMsg struct {
	result *types.ConversionResult
	err    error
}

type progressMsg float64

type waitForProgressMsg struct{}

func InitialModel(runner Runner, inputFile string) Model {
	prog := progress.New(progress.WithGradient("#FF8C42", "#FF9F5A"))

	return Model{
		state:        stateProcessing,
		runner:       runner,
		inputFile:    inputFile,
		progress:     prog,
		progressChan: make(chan float64, 100),
		resultChan:   make(chan conversionResultMsg, 1),
	}
}

// Err returns the error that ended the run, if any.
func (m Model) Err() error {
	return m.err
}

// Result returns the summary of a completed run.
func (m Model) Result() *types.ConversionResult {
	return m.result
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startConversion(),
		m.progress.Init(), // Start progress bar animation
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		width := msg.Width - 12
		if width < 20 {
			width = 20
		}
		m.progress.Width = width

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateProcessing:
			// Keys are ignored until the output file has been written.
			return m, nil
		case stateComplete, stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case conversionCompleteMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.state = stateComplete
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	return m, nil
}

func (m Model) startConversion() tea.Cmd {
	// Capture channels for the goroutine
	runner := m.runner
	progressChan := m.progressChan
	resultChan := m.resultChan

	return func() tea.Msg {
		go func() {
			result, err := runner.Run(progressChan)

			resultChan <- conversionResultMsg{result: result, err: err}

			close(progressChan)
			close(resultChan)
		}()

		return waitForProgressMsg{}
	}
}

func waitForProgress(progressChan chan float64, resultChan chan conversionResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			// Progress channel closed, check result
			res, ok := <-resultChan
			if ok {
				return conversionCompleteMsg(res)
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		return m.viewProcessing()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🍽 Converting menu workbook..."))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("File: %s", filepath.Base(m.inputFile))))
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Conversion Complete!"))
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("Input:  %s\n", truncatePath(m.result.InputFile, m.width)))
	s.WriteString(SuccessStyle.Render(fmt.Sprintf("Output: %s\n", truncatePath(m.result.OutputFile, m.width))))
	s.WriteString("\n")

	for _, sheet := range m.result.Sheets {
		if sheet.Skipped {
			s.WriteString(SkippedStyle.Render(fmt.Sprintf("  %s: no records", sheet.Name)))
		} else {
			s.WriteString(fmt.Sprintf("  %s: %d record(s)", sheet.Name, sheet.Records))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Records written: %d\n", m.result.RecordsWritten))
	if skipped := m.result.SkippedSheets(); len(skipped) > 0 {
		s.WriteString(fmt.Sprintf("Sheets skipped: %s\n", strings.Join(skipped, ", ")))
	}
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Press q or enter to exit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q or enter to exit"))

	return BoxStyle.Render(s.String())
}

// truncatePath shortens long paths from the left so they fit the box.
func truncatePath(path string, width int) string {
	maxPathLen := width - 20 // Leave room for padding and borders
	if maxPathLen < 30 {
		maxPathLen = 30
	}
	if len(path) > maxPathLen {
		return "..." + path[len(path)-maxPathLen+3:]
	}
	return path
}
