package tui

import (
	"fmt"
	"strconv"

	"github.com/MichaelHallik/python-docstring-generator/internal/config"
	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"

	"github.com/charmbracelet/huh"
)

// wizardState carries everything the interactive flow collects before
// rendering.
type wizardState struct {
	Summary     string
	Description string
	Returns     string
	StyleName   string
	LineLength  int
	Quotes      bool
	Copy        bool
	Args        *docstring.Section
	Raises      *docstring.Section
}

func newWizardState(cfg *config.Config) *wizardState {
	return &wizardState{
		StyleName:  cfg.Defaults.Style,
		LineLength: cfg.Defaults.LineLength,
		Quotes:     cfg.Output.TripleQuotes,
		Copy:       cfg.Output.CopyToClipboard,
		Args:       docstring.NewSection("Arguments"),
		Raises:     docstring.NewSection("Raises"),
	}
}

// runContentForm collects the summary, description and returns text.
func (w *wizardState) runContentForm() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Summary").
				Description("One-line summary, kept verbatim").
				Value(&w.Summary),
			huh.NewText().
				Title("Description").
				Description("Blank lines separate paragraphs").
				Value(&w.Description),
			huh.NewText().
				Title("Returns").
				Description("Free text, leave empty to omit").
				Value(&w.Returns),
		),
	).WithTheme(huh.ThemeBase16())
	return form.Run()
}

// runEntryLoop keeps appending entries to section until the user declines.
// Input fields write through the pointer AddEntry hands out.
func runEntryLoop(section *docstring.Section, noun string) error {
	for {
		add := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Add %s?", noun)).
				Value(&add),
		)).WithTheme(huh.ThemeBase16())
		if err := confirm.Run(); err != nil {
			return err
		}
		if !add {
			return nil
		}

		e := section.AddEntry()
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&e.Name),
			huh.NewText().
				Title("Description").
				Value(&e.Description),
		)).WithTheme(huh.ThemeBase16())
		if err := form.Run(); err != nil {
			return err
		}
	}
}

// runOutputForm collects style, width and output options.
func (w *wizardState) runOutputForm() error {
	styleOpts := make([]huh.Option[string], 0, 3)
	for _, st := range docstring.Styles() {
		styleOpts = append(styleOpts, huh.NewOption(st.Label(), string(st)))
	}

	widthOpts := []huh.Option[int]{huh.NewOption("Style default", 0)}
	for _, preset := range docstring.LineLengthPresets {
		widthOpts = append(widthOpts, huh.NewOption(strconv.Itoa(preset), preset))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Docstring style").
				Options(styleOpts...).
				Value(&w.StyleName),
			huh.NewSelect[int]().
				Title("Max line length").
				Options(widthOpts...).
				Value(&w.LineLength),
			huh.NewConfirm().
				Title("Wrap in triple quotes?").
				Value(&w.Quotes),
			huh.NewConfirm().
				Title("Copy result to clipboard?").
				Value(&w.Copy),
		),
	).WithTheme(huh.ThemeBase16())
	return form.Run()
}

// buildRequest assembles the formatter input from the collected state.
func buildRequest(w *wizardState, cfg *config.Config) (docstring.Request, error) {
	style, err := docstring.ParseStyle(w.StyleName)
	if err != nil {
		return docstring.Request{}, err
	}
	return docstring.Request{
		Summary:       w.Summary,
		Description:   w.Description,
		Style:         style,
		MaxLineLength: cfg.ResolveLineLength(style, w.LineLength),
		Args:          w.Args.Collect(),
		Returns:       w.Returns,
		Raises:        w.Raises.Collect(),
	}, nil
}
