package automate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	greetingReply = "Hi! How can I help you today?"
	statusReply   = "I'm fine, thanks for asking! I'm a Go program running smoothly."
	goodbyeReply  = "Goodbye! Have a wonderful day."
	fallbackReply = "I'm a basic chatbot. I only understand 'hello', 'how are you', and 'bye'."
)

// Reply returns the chatbot answer to 'input' and whether the conversation is over.
//
// Input is compared case-insensitively after trimming blanks.
func (r *Runner) Reply(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch {
	case input == "hello" || input == "hi":
		return greetingReply, false
	case input == "how are you":
		return statusReply, false
	case input == "bye" || input == "goodbye":
		return goodbyeReply, true
	case strings.Contains(input, "email") && strings.Contains(input, "extract"):
		return fmt.Sprintf("I already extracted the emails! Check the '%s' file.", r.Config.EmailsFile), false
	case strings.Contains(input, "title") && strings.Contains(input, "scrape"):
		return fmt.Sprintf("I scraped the website title and saved it to '%s'.", r.Config.TitleFile), false
	default:
		return fallbackReply, false
	}
}

// Chat runs the chatbot REPL, reading lines from 'in' until the user says
// goodbye, the input ends or 'ctx' is done.
func (r *Runner) Chat(ctx context.Context, in io.Reader) error {
	r.section("4. Basic Rule-Based Chatbot")
	fmt.Fprintln(r.Out, "Chatbot activated. Type 'bye' to exit.")

	br := bufio.NewReader(in)
	for {
		fmt.Fprint(r.Out, "You: ")
		line, err := br.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.Out, "\nChatbot exiting due to end of input.")
				break
			}
			return fmt.Errorf("cannot read chat input: %w", err)
		}

		reply, done := r.Reply(line)
		if !done {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.Config.ReplyDelay):
			}
		}
		fmt.Fprintf(r.Out, "Bot: %s\n", reply)
		if done {
			break
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.Out, "\nChatbot exiting due to end of input.")
			break
		}
	}
	r.endSection()
	fmt.Fprintln(r.Out, "Chatbot task finished.")
	return nil
}
