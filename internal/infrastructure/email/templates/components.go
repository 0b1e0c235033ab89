// Package templates provides email template components
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// Compiled templates for email components. Variable text is always passed
// through html/template so user-supplied enquiry content is escaped.
var (
	headingTemplate = template.Must(template.New("emailHeading").Parse(
		`<h2 style="font-family: Helvetica, sans-serif; font-size: 20px; font-weight: bold; margin: 0; margin-bottom: 16px;">{{.}}</h2>`))

	paragraphTemplate = template.Must(template.New("emailParagraph").Parse(
		`<p style="font-family: Helvetica, sans-serif; font-size: 16px; font-weight: normal; margin: 0; margin-bottom: 16px;">{{.}}</p>`))

	detailRowTemplate = template.Must(template.New("emailDetailRow").Parse(`
      <tr>
        <td style="font-family: Helvetica, sans-serif; font-size: 14px; font-weight: bold; vertical-align: top; padding: 6px 12px 6px 0; color: #555; white-space: nowrap;" valign="top">{{.Label}}</td>
        <td style="font-family: Helvetica, sans-serif; font-size: 14px; vertical-align: top; padding: 6px 0;" valign="top">{{.Value}}</td>
      </tr>`))
)

type detailRowData struct {
	Label string
	Value string
}

func GetHeading(text string) string {
	return execute(headingTemplate, text)
}

func GetParagraph(text string) string {
	return execute(paragraphTemplate, text)
}

// GetDetailTable renders label/value pairs as a two-column table, skipping
// pairs with an empty value. Pairs alternate label, value, label, value.
func GetDetailTable(pairs ...string) string {
	var rows bytes.Buffer
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		rows.WriteString(execute(detailRowTemplate, detailRowData{Label: pairs[i], Value: pairs[i+1]}))
	}
	return `<table role="presentation" border="0" cellpadding="0" cellspacing="0" style="border-collapse: collapse; width: 100%; margin-bottom: 16px;">` +
		rows.String() + `</table>`
}

func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("Error executing email component template: %v", err)
		return ""
	}
	return buf.String()
}
