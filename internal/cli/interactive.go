package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/substrate/internal/config"
	"github.com/meur/substrate/internal/matcher"
	"github.com/meur/substrate/internal/models"
)

const (
	bannerWidth = 50
	menuIndent  = "            "
)

func newInteractiveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Prompt for substrates until you quit",
		Long: `Shows the attribute vocabulary, then repeatedly asks for the three
substrate attributes and prints the matching items. Blank answers are
rejected. Answer "n" to the continue prompt or send EOF to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := openEngine(cmd, cfg)
			if err != nil {
				return err
			}
			vocab, err := config.LoadVocabulary(cfg.VocabularyPath)
			if err != nil {
				return err
			}
			s := &session{
				engine: engine,
				in:     bufio.NewScanner(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
			}
			return s.run(vocab)
		},
	}
}

// session is one prompt loop over a loaded catalog
type session struct {
	engine *matcher.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func (s *session) run(vocab *models.Vocabulary) error {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Substrate matcher")
	fmt.Fprintln(s.out, rule)
	s.printVocabulary(vocab)
	fmt.Fprintln(s.out, "\n"+rule+"\n")

	for {
		q, ok := s.readQuery()
		if !ok {
			fmt.Fprintln(s.out, "\n\nExited.")
			return s.in.Err()
		}
		if !q.Complete() {
			fmt.Fprintln(s.out, "Error: attributes cannot be blank, please try again")
			fmt.Fprintln(s.out)
			continue
		}

		sep := strings.Repeat("-", bannerWidth)
		fmt.Fprintln(s.out, "\n"+sep)
		fmt.Fprintf(s.out, "Substrate - base: %s, additional: %s, skill: %s\n", q.Base, q.Additional, q.Skill)
		fmt.Fprintln(s.out, sep)
		fmt.Fprintln(s.out, s.engine.Match(q.Base, q.Additional, q.Skill))
		fmt.Fprintln(s.out, sep+"\n")

		answer, ok := s.prompt("Continue? (y/n, default y): ")
		if !ok {
			fmt.Fprintln(s.out, "\n\nExited.")
			return s.in.Err()
		}
		if strings.ToLower(answer) == "n" {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

func (s *session) printVocabulary(vocab *models.Vocabulary) {
	if vocab == nil {
		return
	}
	fmt.Fprintln(s.out)
	printValues(s.out, "Base attributes: ", vocab.Base)
	printValues(s.out, "Additional attributes: ", vocab.Additional)
	printValues(s.out, "Skill attributes: ", vocab.Skill)
}

// printValues writes a labelled list wrapped at six values per line
func printValues(w io.Writer, label string, values []string) {
	const perLine = 6
	for i := 0; i < len(values); i += perLine {
		end := min(i+perLine, len(values))
		prefix := menuIndent
		if i == 0 {
			prefix = label
		}
		line := strings.Join(values[i:end], ", ")
		if end < len(values) {
			line += ","
		}
		fmt.Fprintln(w, prefix+line)
	}
}

// readQuery prompts for the three attributes. ok is false once input ends.
func (s *session) readQuery() (models.Query, bool) {
	var q models.Query
	var ok bool
	if q.Base, ok = s.prompt("Base attribute: "); !ok {
		return q, false
	}
	if q.Additional, ok = s.prompt("Additional attribute: "); !ok {
		return q, false
	}
	if q.Skill, ok = s.prompt("Skill attribute: "); !ok {
		return q, false
	}
	return q, true
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
