// Package cli implements zpass's command-line subcommands and the
// plain-terminal setup flow.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/zarlcorp/zpass/internal/password"
	"golang.org/x/term"
)

// SecretReader reads one password attempt without echoing it. The
// prompt is written by the reader itself.
type SecretReader func(prompt string) (string, error)

// ReadPassword prompts on w and reads a password from the terminal
// without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// CmdGenerate generates and prints one default password. An optional
// argument supplies the username.
func CmdGenerate(args []string) {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}

	g := password.NewGenerator()
	fmt.Println(g.Generate(username))
}

// CmdCheck evaluates a password against the strong policy and prints
// the per-rule breakdown. Exits 1 when the password is weak.
func CmdCheck(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: zpass check <username> <password>")
		os.Exit(1)
	}
	username, candidate := args[0], args[1]

	printRules(os.Stdout, password.Check(password.Strong, username, candidate))

	if !password.IsStrong(username, candidate) {
		fmt.Println("Your password is weak. Try again!")
		os.Exit(1)
	}
	fmt.Println("Strong password!")
}

func printRules(w io.Writer, rules []password.Rule) {
	for _, r := range rules {
		mark := "ok"
		if !r.OK {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "  %-4s  %s\n", mark, r.Name)
	}
}

// CmdSetup runs the interactive username/password flow on stdio. An
// optional argument supplies the username, skipping its prompt. When
// stdin is a terminal the new-password prompt reads without echo.
func CmdSetup(args []string) {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}

	var secret SecretReader
	if term.IsTerminal(int(syscall.Stdin)) {
		secret = func(prompt string) (string, error) {
			return ReadPassword(prompt, os.Stdout)
		}
	}

	if err := Setup(os.Stdin, os.Stdout, username, secret); err != nil {
		fmt.Fprintf(os.Stderr, "zpass: %s\n", err)
		os.Exit(1)
	}
}

// Setup drives the prompt transcript: ask for a username, show a
// generated default password, and on request loop reading a new
// password until it satisfies the strong policy. The loop is
// unbounded while input keeps coming; exhausted or oversized input is
// an error, never a hang or a truncation. A nil secret reads password
// attempts as plain tokens from in.
func Setup(in io.Reader, out io.Writer, username string, secret SecretReader) error {
	tr := NewTokenReader(in)

	if username == "" {
		fmt.Fprint(out, "Enter username: ")
		var err error
		username, err = tr.Token()
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
	}

	g := password.NewGenerator()
	fmt.Fprintln(out, "Generating a default password...")
	fmt.Fprintf(out, "Generated default password: %s\n", g.Generate(username))

	fmt.Fprint(out, "Manually change password? (y/n): ")
	choice, err := tr.Token()
	if err != nil {
		return fmt.Errorf("read choice: %w", err)
	}
	if !strings.EqualFold(choice, "y") {
		fmt.Fprintln(out, "You chose not to change your password.")
		return nil
	}

	for {
		var candidate string
		if secret != nil {
			candidate, err = secret("Enter new password: ")
		} else {
			fmt.Fprint(out, "Enter new password: ")
			candidate, err = tr.Token()
		}
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		if password.IsStrong(username, candidate) {
			fmt.Fprintln(out, "Strong password!")
			fmt.Fprintf(out, "Successfully created password: %s\n", candidate)
			return nil
		}
		fmt.Fprintln(out, "Your password is weak. Try again!")
	}
}
