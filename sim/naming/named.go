// Package naming defines the hierarchical naming convention of simulated
// elements, such as "NIF.Subnet[0].Node[3].VC[1].EjectionBuf".
package naming

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

// Name returns the name.
func (b *NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase
func MakeNamedBase(name string) NamedBase {
	NameMustBeValid(name)
	return NamedBase{name: name}
}

// Indexed builds the name of the i-th element of a series under parent, for
// example Indexed("NIF", "Subnet", 0) returns "NIF.Subnet[0]".
func Indexed(parent, elem string, index ...int) string {
	var sb strings.Builder

	if parent != "" {
		sb.WriteString(parent)
		sb.WriteByte('.')
	}

	sb.WriteString(elem)

	for _, i := range index {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}

	return sb.String()
}

// NameMustBeValid panics if the name does not follow the naming convention.
//  1. Tokens are separated by dots and must not be empty.
//  2. Each token starts with a capital letter.
//  3. Elements of a series use square-bracket indices with integers.
func NameMustBeValid(name string) {
	if err := validate(name); err != nil {
		panic(fmt.Sprintf("name %q is not valid: %s", name, err))
	}
}

func validate(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}

	for _, token := range strings.Split(name, ".") {
		if err := validateToken(token); err != nil {
			return err
		}
	}

	return nil
}

func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}

	if !unicode.IsUpper([]rune(token)[0]) {
		return fmt.Errorf("token %q must be capitalized", token)
	}

	parts := strings.Split(token, "[")
	for _, p := range parts[1:] {
		if !strings.HasSuffix(p, "]") {
			return fmt.Errorf("token %q has unmatched bracket", token)
		}

		if _, err := strconv.Atoi(strings.TrimSuffix(p, "]")); err != nil {
			return fmt.Errorf("token %q index must be integer", token)
		}
	}

	if strings.Contains(parts[0], "]") {
		return fmt.Errorf("token %q has unmatched bracket", token)
	}

	return nil
}
