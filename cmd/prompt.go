package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"image-converter/internal/config"
	"image-converter/internal/encoder"
	"image-converter/internal/flow"
)

const filePickerHeight = 14

var errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// huhPrompter backs the interactive flow with huh terminal forms.
type huhPrompter struct {
	startDir   string
	accessible bool
}

func newHuhPrompter(cfg config.Config) *huhPrompter {
	return &huhPrompter{startDir: cfg.StartDir, accessible: cfg.Accessible}
}

func (p *huhPrompter) SelectFile() (string, error) {
	var path string
	err := p.run(huh.NewFilePicker().
		Title("Select an Image to Convert").
		Description("Image Files: " + describeExtensions(encoder.InputExtensions())).
		CurrentDirectory(p.startDir).
		AllowedTypes(encoder.InputExtensions()).
		FileAllowed(true).
		DirAllowed(false).
		Picking(true).
		Height(filePickerHeight).
		Value(&path))
	if err != nil {
		return "", err
	}
	return path, nil
}

func (p *huhPrompter) SelectFormat(formats []string, initial string) (string, error) {
	choice := initial
	err := p.run(huh.NewSelect[string]().
		Title("Choose target format:").
		Options(huh.NewOptions(formats...)...).
		Value(&choice))
	if err != nil {
		return "", err
	}
	return choice, nil
}

func (p *huhPrompter) Notify(n flow.Notification) error {
	return p.run(huh.NewNote().
		Title(noteTitle(n)).
		Description(n.Body).
		Next(true).
		NextLabel("OK"))
}

func (p *huhPrompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return flow.ErrCancelled
	}
	if err != nil {
		return fmt.Errorf("run prompt: %w", err)
	}
	return nil
}

func describeExtensions(exts []string) string {
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		patterns = append(patterns, "*"+ext)
	}
	return strings.Join(patterns, " ")
}

func noteTitle(n flow.Notification) string {
	if n.Failed {
		return errorTitleStyle.Render(n.Title)
	}
	return n.Title
}
