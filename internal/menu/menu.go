// Package menu is the interactive "choose your destiny" sample.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/mikey-austin/conwrite/internal/core"
	"github.com/mikey-austin/conwrite/internal/ports"
	"github.com/mikey-austin/conwrite/pkg/console"
)

// DefaultTitle is the prompt shown above the options.
const DefaultTitle = "Choose your destiny"

// Choices are the selectable options, in display order.
var Choices = []string{
	"Be a good person",
	"Be a bad person",
	"Be a neutral person, but be careful not to get caught with your own actions",
	"If you choose to be a bad person, you will be punished by the law",
	"If you choose to be a good person, you will be rewarded by the law",
	"If you choose to be a neutral person, you will be left alone",
}

// Verdict is the colored answer for a choice.
type Verdict struct {
	Tone    string
	Message string
}

var verdicts = map[string]Verdict{
	Choices[0]: {Tone: "green", Message: "You are a good person"},
	Choices[1]: {Tone: "red", Message: "You are a bad person"},
	Choices[2]: {Tone: "yellow", Message: "You are a neutral person, but be careful not to get caught with your own actions"},
	Choices[3]: {Tone: "red", Message: "You are a bad person, and you will be punished by the law"},
	Choices[4]: {Tone: "green", Message: "You are a good person, and you will be rewarded by the law"},
	Choices[5]: {Tone: "yellow", Message: "You are a neutral person, and you will be left alone"},
}

// ErrNoChoice is returned when the prompt yields nothing.
var ErrNoChoice = errors.New("no choice made")

// Resolve maps a choice to its verdict.
func Resolve(choice string) Verdict {
	if v, ok := verdicts[choice]; ok {
		return v
	}
	return Verdict{Tone: "red", Message: "Invalid choice"}
}

// Display converts a choice to the upper-cased label shown in the prompt.
func Display(choice string) string {
	return strings.ToUpper(choice)
}

// Options configures Run.
type Options struct {
	Title    string
	PageSize int
	Banner   string
}

// Run writes the banner, prompts for a choice and resolves it.
func Run(con ports.Console, prompter ports.Prompter, opts Options) (core.MenuResult, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}

	if opts.Banner != "" {
		if err := con.Write(opts.Banner, console.Stdout); err != nil {
			return core.MenuResult{}, err
		}
	}

	labels := make([]string, len(Choices))
	byLabel := make(map[string]string, len(Choices))
	for idx, choice := range Choices {
		labels[idx] = Display(choice)
		byLabel[labels[idx]] = choice
	}

	picked, err := prompter.Select(opts.Title, labels, opts.PageSize)
	if err != nil {
		return core.MenuResult{}, core.WrapError(core.ExitAborted, "menu prompt", err)
	}
	if picked == "" {
		return core.MenuResult{}, core.WrapError(core.ExitAborted, "menu prompt", ErrNoChoice)
	}

	choice, ok := byLabel[picked]
	if !ok {
		choice = picked
	}
	verdict := Resolve(choice)
	return core.MenuResult{Choice: choice, Tone: verdict.Tone, Message: verdict.Message}, nil
}

// Banner renders the big-text heading: a centered greeting and a blue subtitle.
func Banner(color bool) (string, error) {
	hello, err := pterm.DefaultBigText.
		WithLetters(putils.LettersFromString("Hello, World!")).
		Srender()
	if err != nil {
		return "", fmt.Errorf("render greeting: %w", err)
	}

	subtitle := putils.LettersFromString("First GUI")
	if color {
		subtitle = putils.LettersFromStringWithStyle("First GUI", pterm.NewStyle(pterm.FgBlue))
	}
	gui, err := pterm.DefaultBigText.WithLetters(subtitle).Srender()
	if err != nil {
		return "", fmt.Errorf("render subtitle: %w", err)
	}

	return pterm.DefaultCenter.Sprint(hello) + gui, nil
}

// PTermPrompter asks with pterm's interactive select.
type PTermPrompter struct{}

// Select shows options and returns the one picked.
func (PTermPrompter) Select(title string, options []string, pageSize int) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(pageSize).
		Show(title)
}
