package console

import (
	"io"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/log"
)

const (
	Banner  = "Main backend CLI tester. Type a command or 'quit'."
	Prompt  = ">>> "
	MsgBye  = "Bye."
	maxLine = 64 * 1024
)

type handler struct {
	l   log.Logger
	uc  command.UseCase
	in  io.Reader
	out io.Writer
}

// New creates a console loop reading commands from in and writing results to out.
func New(l log.Logger, uc command.UseCase, in io.Reader, out io.Writer) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		in:  in,
		out: out,
	}
}
