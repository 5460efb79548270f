package app

import (
	"github.com/dshills/yate/internal/term"
)

// promptObserver sees every keystroke of an interactive prompt with
// the input as typed so far. Incremental search is built on this.
type promptObserver interface {
	OnKeystroke(input string, k term.Key)
}

// prompt runs an interactive single-line prompt in the message bar.
// format must contain one %s verb for the current input. Enter with
// non-empty input accepts; escape cancels. The observer, when non-nil,
// is notified after every keystroke, including the final accept or
// cancel.
func (e *Editor) prompt(format string, obs promptObserver) (string, bool) {
	var input []byte
	for {
		e.setStatus(format, input)
		if err := e.refresh(); err != nil {
			return "", false
		}

		k, ok := term.ReadKey(e.term)
		if !ok {
			continue
		}

		switch {
		case k == term.KeyBackspace || k == term.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}

		case k == term.KeyEscape:
			e.setStatus("")
			e.notify(obs, input, k)
			return "", false

		case k == term.KeyEnter:
			if len(input) > 0 {
				e.setStatus("")
				e.notify(obs, input, k)
				return string(input), true
			}

		case k.IsPrintable():
			input = append(input, byte(k))
		}

		e.notify(obs, input, k)
	}
}

func (e *Editor) notify(obs promptObserver, input []byte, k term.Key) {
	if obs != nil {
		obs.OnKeystroke(string(input), k)
	}
}
