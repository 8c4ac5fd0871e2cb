package hal

import "github.com/atotto/clipboard"

type hostClipboard struct{}

func (hostClipboard) WriteText(s string) error {
	return clipboard.WriteAll(s)
}

func (hostClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}
