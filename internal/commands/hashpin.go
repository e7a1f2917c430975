package commands

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// HashPIN handles the hash-pin subcommand: it prompts for a 4-digit PIN
// without echoing it and prints the bcrypt hash, for seeding accounts by
// hand or rotating a stored hash outside the app.
func HashPIN(args []string) {
	fs := flag.NewFlagSet("hash-pin", flag.ExitOnError)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: troupe-app hash-pin [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Prompts for a 4-digit PIN and prints its bcrypt hash.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	pin := readHidden("Enter PIN:   ")
	confirm := readHidden("Confirm PIN: ")

	if pin != confirm {
		fmt.Fprintln(os.Stderr, "PINs do not match")
		os.Exit(1)
	}
	if !validPIN(pin) {
		fmt.Fprintln(os.Stderr, "PIN must be exactly 4 digits")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}

func readHidden(prompt string) string {
	fmt.Print(prompt)
	value, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	return string(value)
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
