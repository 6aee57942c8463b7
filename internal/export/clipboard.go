package export

import (
	"context"

	"github.com/atotto/clipboard"
)

// Clipboard places text on a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteText copies text to the system clipboard. It fails when no clipboard
// utility is available (for example xclip, xsel or wl-copy on Linux).
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
