package lexi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sghaida/lexi/route"
)

var methodStyles = map[string]lipgloss.Style{
	http.MethodGet:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	http.MethodPost:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	http.MethodPut:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	http.MethodDelete: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	http.MethodPatch:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

// RenderRoutes writes routes as a table, in registration order. When hasView
// is non-nil a View column shows whether each route has a view bound.
func RenderRoutes(w io.Writer, routes []route.Definition, hasView func(routeName string) bool) error {
	headers := []string{"Name", "Method", "Path", "Params"}
	if hasView != nil {
		headers = append(headers, "View")
	}

	rows := make([][]string, 0, len(routes))
	for _, def := range routes {
		method := def.Method
		if style, ok := methodStyles[method]; ok {
			method = style.Render(method)
		}
		params := "-"
		if names := def.Path.Params(); len(names) > 0 {
			params = fmt.Sprint(names)
		}
		row := []string{def.Name, method, def.Path.Template(), params}
		if hasView != nil {
			bound := "no"
			if hasView(def.Name) {
				bound = "yes"
			}
			row = append(row, bound)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Align(lipgloss.Left).Padding(0, 1)
			if row == table.HeaderRow {
				style = style.Bold(true)
			}
			return style
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
