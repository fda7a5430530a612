// Package share builds the text a player can copy after a game and puts it
// on the terminal's clipboard with OSC 52.
package share

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Text fills the {score}, {max_tile} and {url} placeholders of message and
// trims surrounding whitespace. Unknown placeholders and line breaks inside
// the message are left as written.
func Text(message string, score, maxTile int, url string) string {
	r := strings.NewReplacer(
		"{score}", strconv.Itoa(score),
		"{max_tile}", strconv.Itoa(maxTile),
		"{url}", url,
	)
	return strings.TrimSpace(r.Replace(message))
}

// Copy writes an OSC 52 sequence that asks the terminal on the other end of
// w to copy text. Inside tmux the sequence is wrapped in a passthrough.
func Copy(w io.Writer, text string, tmux bool) error {
	seq := osc52.New(text)
	if tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("share: write clipboard sequence: %w", err)
	}
	return nil
}
