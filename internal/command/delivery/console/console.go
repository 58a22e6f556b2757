package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// line is the JSON shape of one printed result.
type line struct {
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// Run prints the banner and serves commands until quit/exit, end of input or ctx is done.
func (h *handler) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(h.out, Banner); err != nil {
		return err
	}

	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	enc := json.NewEncoder(h.out)
	enc.SetEscapeHTML(false)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := fmt.Fprint(h.out, Prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			if err := scanner.Err(); err != nil {
				h.l.Errorf(ctx, "internal.command.delivery.console.Run: %v", err)
				return err
			}
			return nil
		}

		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "quit" || cmd == "exit" {
			_, err := fmt.Fprintln(h.out, MsgBye)
			return err
		}

		res := h.uc.Dispatch(ctx, cmd)
		if err := enc.Encode(line{Message: res.Message, URL: res.URL}); err != nil {
			return err
		}
	}
}
