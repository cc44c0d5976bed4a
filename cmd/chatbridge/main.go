// Chatbridge sends a conversation to an OpenAI-compatible or Azure OpenAI
// chat completions endpoint, or shares it as a ShareGPT transcript.
//
// Usage:
//
//	chatbridge complete [flags]   print the assistant reply
//	chatbridge stream [flags]     print the reply as it is generated
//	chatbridge share [flags]      publish the conversation and open the link
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// stringList collects repeated string flags.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// cliFlags holds the flags shared by every subcommand.
type cliFlags struct {
	config       string
	env          string
	conversation string
	system       string
	messages     stringList
	raw          bool
	noOpen       bool
	verbose      bool
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{}

	fs.StringVar(&f.config, "config", "", "path to configuration file (default: chatbridge.yaml if present)")
	fs.StringVar(&f.env, "env", ".env", "path to .env file (ignored if missing)")
	fs.StringVar(&f.conversation, "conversation", "", "YAML file with a list of {role, content} messages")
	fs.StringVar(&f.system, "system", "", "system prompt prepended to the conversation")
	fs.Var(&f.messages, "m", "user message appended to the conversation (repeatable)")
	fs.BoolVar(&f.raw, "raw", false, "print the raw JSON response or event stream")
	fs.BoolVar(&f.noOpen, "no-open", false, "share: print the link without opening a browser")
	fs.BoolVar(&f.verbose, "verbose", false, "log requests to stderr")

	return f
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chatbridge <command> [flags]\n\nCommands:\n"+
		"  complete  Send the conversation and print the reply\n"+
		"  stream    Send the conversation and print the reply as it streams\n"+
		"  share     Publish the conversation to ShareGPT and open the link\n\n"+
		"Run 'chatbridge <command> -h' for command flags.\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "complete", "stream", "share":
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	f := registerFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chatbridge %s [flags]\n\nFlags:\n", cmd)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	if err := loadDotEnv(f.env); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cmd, f, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		cancel()
		os.Exit(1)
	}
}
