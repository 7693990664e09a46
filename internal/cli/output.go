package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/tracker/internal/cli/styles"
)

// Renderer is implemented by command results that print their own
// human-readable form
type Renderer interface {
	Render(w io.Writer) error
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr at write time
	Out    io.Writer
	ErrOut io.Writer
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Quiet mode prints ids only, one per line
		switch v := data.(type) {
		case interface{ GetID() int }:
			_, err := fmt.Fprintf(f.stdout(), "%d\n", v.GetID())
			return err
		case interface{ GetIDs() []int }:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintf(f.stdout(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
		return nil
	}

	if f.JSON {
		return encodeJSON(f.stdout(), map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return encodeJSON(f.stdout(), map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	w := f.stderr()
	if err := styles.Fprintln(w, styles.ErrorStyle.Render("❌ Error:")+" "+message); err != nil {
		return err
	}
	if suggestion != "" {
		return styles.Fprintln(w, styles.SubtitleStyle.Render("💡 Suggestion:")+" "+suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if r, ok := data.(Renderer); ok {
		return r.Render(f.stdout())
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
