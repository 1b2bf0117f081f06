// Package lineui drives a session over plain line-oriented input and output.
package lineui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/verte-zerg/flashcards/internal/model"
	"github.com/verte-zerg/flashcards/internal/session"
)

// QuitCommand ends the session when entered on its own line.
const QuitCommand = ":q"

// Run reads one answer per line from in until EOF or QuitCommand and
// writes questions, feedback and the stats line to out.
func Run(in io.Reader, out io.Writer, s *session.Session) (model.Summary, error) {
	scanner := bufio.NewScanner(in)
	for {
		if err := writeQuestion(out, s); err != nil {
			return s.Quit(), err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return s.Quit(), errors.Wrap(err, "read answer")
			}
			return s.Quit(), nil
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == QuitCommand {
			return s.Quit(), nil
		}
		res, err := s.Submit(line)
		if err != nil {
			return s.Quit(), err
		}
		if _, err := fmt.Fprintf(out, "%s\n%s\n\n", res.Feedback, s.StatsText()); err != nil {
			return s.Quit(), errors.Wrap(err, "write feedback")
		}
	}
}

func writeQuestion(out io.Writer, s *session.Session) error {
	_, err := fmt.Fprintf(out, "%s\n> ", s.QuestionText())
	return errors.Wrap(err, "write question")
}
