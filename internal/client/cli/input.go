package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var errInvalidAmount = errors.New("invalid amount")

// GetSimpleText prints a prompt to w and reads one trimmed line from reader.
// A final line without newline is still returned.
//
//	Benutzername
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a secret from the terminal without echo.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// getSimpleText and getPassword are swapped out in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// promptDefault is getSimpleText with a value used when the answer is empty.
func (a *App) promptDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// parseCents reads a euro amount such as "4", "4,5", "4,50" or "4.50".
func parseCents(s string) (int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "€"))
	if s == "" {
		return 0, errInvalidAmount
	}

	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}

	euros, cents, hasCents := strings.Cut(strings.ReplaceAll(s, ",", "."), ".")
	if euros == "" || strings.Trim(euros, "0123456789") != "" {
		return 0, errInvalidAmount
	}
	e, err := strconv.Atoi(euros)
	if err != nil {
		return 0, errInvalidAmount
	}

	c := 0
	if hasCents {
		if len(cents) == 0 || len(cents) > 2 || strings.Trim(cents, "0123456789") != "" {
			return 0, errInvalidAmount
		}
		if len(cents) == 1 {
			cents += "0"
		}
		if c, err = strconv.Atoi(cents); err != nil {
			return 0, errInvalidAmount
		}
	}

	return sign * (e*100 + c), nil
}
