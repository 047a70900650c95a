package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/hienpham123/tabletify/internal/errdef"
)

// Port is the host clipboard capability. Both methods may fail on headless
// hosts; callers must degrade to the internal buffer.
type Port interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// SystemPort talks to the OS clipboard.
type SystemPort struct{}

func (SystemPort) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errdef.Wrap(errdef.CodeClipboard, err, "read system clipboard")
	}
	return normalizeText(text), nil
}

func (SystemPort) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errdef.Wrap(errdef.CodeClipboard, err, "write system clipboard")
	}
	return nil
}

// MemPort is an in-memory Port for tests and for hosts without a clipboard.
type MemPort struct {
	Text     string
	ReadErr  error
	WriteErr error
}

func (p *MemPort) ReadText() (string, error) {
	if p.ReadErr != nil {
		return "", p.ReadErr
	}
	return normalizeText(p.Text), nil
}

func (p *MemPort) WriteText(text string) error {
	if p.WriteErr != nil {
		return p.WriteErr
	}
	p.Text = text
	return nil
}

// normalizeText folds CRLF and stray CR line endings to LF so parsing sees
// one newline convention regardless of the source application.
func normalizeText(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
