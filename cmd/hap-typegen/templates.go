package main

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/hap-protocol/hap-go/pkg/registry"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds the parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	characteristicsTmpl + servicesTmpl,
))

// constFileData holds pre-computed data for a constant file template.
type constFileData struct {
	Package string
	Source  string
	Entries []constEntry
}

// constEntry is one generated constant.
type constEntry struct {
	GoName  string
	Display string
	Code    string
	UUID    string
}

const characteristicsTmpl = `{{define "characteristics"}}// Code generated by hap-typegen. DO NOT EDIT.

package {{.Package}}

// Characteristic type UUIDs derived from {{.Source}}.
const (
{{- range .Entries}}
{{- if .Display}}
// Characteristic{{.GoName}}: {{.Display}} (code {{.Code}}).
{{- else}}
// Characteristic{{.GoName}} (code {{.Code}}).
{{- end}}
Characteristic{{.GoName}} = {{quote .UUID}}
{{- end}}
)
{{end}}`

const servicesTmpl = `{{define "services"}}// Code generated by hap-typegen. DO NOT EDIT.

package {{.Package}}

// Service type UUIDs derived from {{.Source}}.
const (
{{- range .Entries}}
{{- if .Display}}
// Service{{.GoName}}: {{.Display}} (code {{.Code}}).
{{- else}}
// Service{{.GoName}} (code {{.Code}}).
{{- end}}
Service{{.GoName}} = {{quote .UUID}}
{{- end}}
)
{{end}}`

// GenerateCharacteristics renders the characteristic constant file.
// Entries are sorted by constant name so regeneration is stable.
func GenerateCharacteristics(defs []registry.CharacteristicDef, pkg, source string) (string, error) {
	entries := make([]constEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, constEntry{
			GoName:  goName(def.Name),
			Display: def.Description,
			Code:    def.Code,
			UUID:    def.UUID,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GoName < entries[j].GoName
	})

	var b strings.Builder
	data := constFileData{Package: pkg, Source: source, Entries: entries}
	if err := templates.ExecuteTemplate(&b, "characteristics", data); err != nil {
		return "", fmt.Errorf("rendering characteristics: %w", err)
	}
	return b.String(), nil
}

// GenerateServices renders the service constant file. Entries are
// sorted by constant name so regeneration is stable.
func GenerateServices(defs []registry.ServiceDef, pkg, source string) (string, error) {
	entries := make([]constEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, constEntry{
			GoName:  goName(def.Name),
			Display: def.Description,
			Code:    def.Code,
			UUID:    def.UUID,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GoName < entries[j].GoName
	})

	var b strings.Builder
	data := constFileData{Package: pkg, Source: source, Entries: entries}
	if err := templates.ExecuteTemplate(&b, "services", data); err != nil {
		return "", fmt.Errorf("rendering services: %w", err)
	}
	return b.String(), nil
}

// goName converts "serial-number" to "SerialNumber", "fan-v2" to "FanV2".
func goName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
