package tui

import (
	"errors"
	"fmt"

	"github.com/MichaelHallik/python-docstring-generator/internal/config"
	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ErrAborted reports that the user backed out of the wizard.
var ErrAborted = errors.New("aborted")

// Run drives the interactive wizard: collect the content, review the entry
// sections, render and print the result. It loops until the user is done.
func Run(cfg *config.Config) error {
	for {
		state := newWizardState(cfg)
		if err := runWizard(state); err != nil {
			return err
		}

		req, err := buildRequest(state, cfg)
		if err != nil {
			return err
		}
		body, err := docstring.Format(req)
		if err != nil {
			return err
		}

		output := body
		if state.Quotes {
			output = docstring.TripleQuoted(body)
		}
		printResult(output)

		if state.Copy {
			if err := clipboard.WriteAll(output); err != nil {
				fmt.Println(StyleStatusBad.Render("clipboard: " + err.Error()))
			} else {
				fmt.Println(StyleStatusGood.Render("Copied to clipboard."))
			}
		}

		again := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Generate another?").
				Value(&again),
		)).WithTheme(huh.ThemeBase16())
		if err := confirm.Run(); err != nil {
			return normalizeAbort(err)
		}
		if !again {
			return nil
		}
	}
}

func runWizard(state *wizardState) error {
	if err := state.runContentForm(); err != nil {
		return normalizeAbort(err)
	}
	if err := runEntryLoop(state.Args, "an argument"); err != nil {
		return normalizeAbort(err)
	}
	if err := runEntryLoop(state.Raises, "a raised exception"); err != nil {
		return normalizeAbort(err)
	}
	if err := state.runOutputForm(); err != nil {
		return normalizeAbort(err)
	}
	if err := reviewSection(state.Args); err != nil {
		return err
	}
	return reviewSection(state.Raises)
}

// reviewSection opens the deletion list when the section has entries.
func reviewSection(section *docstring.Section) error {
	if section.Len() == 0 {
		return nil
	}
	model, err := tea.NewProgram(NewReviewModel(section), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run review: %w", err)
	}
	if review, ok := model.(ReviewModel); ok && review.Aborted {
		return ErrAborted
	}
	return nil
}

func printResult(output string) {
	fmt.Println(StyleTitle.Render("Generated Docstring"))
	fmt.Println(StyleCard.Render(output))
}

// normalizeAbort folds huh's abort error into ours so callers handle one.
func normalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
