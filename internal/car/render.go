package car

import (
	"io"
	"strings"
)

// Registration is the per-use data of a single car. It is never stored in
// the registry.
type Registration struct {
	Number string
	Owner  string
}

// Render combines a shared model with a registration into the car's details.
func Render(m *Model, r Registration) string {
	var b strings.Builder
	b.WriteString("Car Details:\n")
	b.WriteString("Model: " + m.name + "\n")
	b.WriteString("Brand: " + m.brand + "\n")
	b.WriteString("Engine Type: " + m.engineType + "\n")
	b.WriteString("Registration Number: " + r.Number + "\n")
	b.WriteString("Owner: " + r.Owner + "\n")
	return b.String()
}

// Display writes the rendered details to w.
func (m *Model) Display(w io.Writer, r Registration) error {
	_, err := io.WriteString(w, Render(m, r))
	return err
}
