package random

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/testkit-dev/testkit/packages/card"
	"github.com/testkit-dev/testkit/packages/dates"
)

// Func is a named generator callable from data templates.
type Func func(args []string) any

// Registry dispatches generator calls written as name(args) strings.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry with every built-in generator registered.
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
	}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.funcs["now"] = funcNow
	r.funcs["timestamp"] = funcTimestamp
	r.funcs["date"] = funcDate
	r.funcs["uuid"] = funcUUID
	r.funcs["random"] = funcRandom
	r.funcs["randomString"] = funcRandomString
	r.funcs["randomAlphanumeric"] = funcRandomAlphanumeric
	r.funcs["digits"] = funcDigits
	r.funcs["email"] = funcEmail
	r.funcs["password"] = funcPassword
	r.funcs["phoneNumber"] = funcPhoneNumber
	r.funcs["fullName"] = func(_ []string) any { return FullName() }
	r.funcs["address"] = func(_ []string) any { return Address() }
	r.funcs["city"] = func(_ []string) any { return City() }
	r.funcs["company"] = func(_ []string) any { return Company() }
	r.funcs["cardNumber"] = funcCardNumber
	r.funcs["cvc"] = funcCVC
	r.funcs["cardExpiry"] = funcCardExpiry
}

// Register adds or replaces a generator.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Names lists the registered generator names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

var funcCallPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// Call evaluates an expression like uuid() or cardNumber(amex). A bare
// name without parentheses is treated as a zero-argument call. Returns
// false when the expression does not name a registered generator.
func (r *Registry) Call(expr string) (any, bool) {
	expr = strings.TrimSpace(expr)

	name := expr
	argsStr := ""
	if matches := funcCallPattern.FindStringSubmatch(expr); matches != nil {
		name = matches[1]
		argsStr = matches[2]
	}

	fn, ok := r.funcs[name]
	if !ok {
		return nil, false
	}

	var args []string
	if argsStr != "" {
		args = parseArgs(argsStr)
	}

	return fn(args), true
}

// parseArgs splits a comma-separated argument list, honoring single and
// double quotes around individual arguments.
func parseArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !inQuote && (ch == '"' || ch == '\'') {
			inQuote = true
			quoteChar = ch
		} else if inQuote && ch == quoteChar {
			inQuote = false
			quoteChar = 0
		} else if !inQuote && ch == ',' {
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}

	return args
}

func funcNow(_ []string) any {
	return time.Now().UTC().Format(time.RFC3339)
}

func funcTimestamp(_ []string) any {
	return time.Now().Unix()
}

func funcDate(args []string) any {
	format := "2006-01-02"
	if len(args) >= 1 {
		format = args[0]
	}
	return time.Now().UTC().Format(format)
}

func funcUUID(_ []string) any {
	return UUID()
}

func funcRandom(args []string) any {
	min, max := 0, 100
	if len(args) >= 2 {
		min = intArg(args[0], min, "random() min")
		max = intArg(args[1], max, "random() max")
	}
	return Int(min, max)
}

func funcRandomString(args []string) any {
	length := 16
	if len(args) >= 1 {
		length = intArg(args[0], length, "randomString() length")
	}
	return String(length)
}

func funcRandomAlphanumeric(args []string) any {
	length := 8
	if len(args) >= 1 {
		length = intArg(args[0], length, "randomAlphanumeric() length")
	}
	return Alphanumeric(length)
}

func funcDigits(args []string) any {
	length := 10
	if len(args) >= 1 {
		length = intArg(args[0], length, "digits() length")
	}
	return Digits(length)
}

func funcEmail(_ []string) any {
	return Email()
}

func funcPassword(args []string) any {
	opts := DefaultPasswordOptions()
	if len(args) >= 1 {
		opts.Length = intArg(args[0], opts.Length, "password() length")
	}
	pw, err := Password(opts)
	if err != nil {
		return ""
	}
	return pw
}

func funcPhoneNumber(args []string) any {
	format := ""
	if len(args) >= 1 {
		format = args[0]
	}
	return PhoneNumber(format)
}

func funcCardNumber(args []string) any {
	opts := card.Options{}
	if len(args) >= 1 {
		if t, ok := card.ParseType(args[0]); ok {
			opts.Type = t
		} else {
			fmt.Fprintf(os.Stderr, "warning: cardNumber() unknown card type %q, using visa\n", args[0])
		}
	}
	if len(args) >= 2 && strings.EqualFold(args[1], "invalid") {
		opts.Invalid = true
	}
	return card.Generate(opts)
}

func funcCVC(args []string) any {
	t := card.Visa
	if len(args) >= 1 {
		if parsed, ok := card.ParseType(args[0]); ok {
			t = parsed
		}
	}
	return card.CVC(t)
}

func funcCardExpiry(args []string) any {
	years := 3
	if len(args) >= 1 {
		years = intArg(args[0], years, "cardExpiry() years")
	}
	return dates.ExpiryCardFace(time.Now(), years)
}

func intArg(s string, fallback int, what string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s argument %q is not a valid integer\n", what, s)
		return fallback
	}
	return v
}
