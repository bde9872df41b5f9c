package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediaprobe/internal/media/record"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

var titleCaser = cases.Title(language.English)

// fieldLabel turns a record key such as "videoCodecProfile" into
// "Video Codec Profile".
func fieldLabel(field record.Field) string {
	var b strings.Builder
	for i, r := range string(field) {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return titleCaser.String(b.String())
}

func recordRows(rec record.Record) [][]string {
	entries := rec.Entries()
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		value := fmt.Sprint(entry.Value)
		if entry.Field == record.FieldHaveVideo || entry.Field == record.FieldHaveAudio {
			value = yesNo(true)
		}
		rows = append(rows, []string{fieldLabel(entry.Field), value})
	}
	return rows
}

func renderRecord(rec record.Record) string {
	return renderTable([]string{"Field", "Value"}, recordRows(rec), []columnAlignment{alignLeft, alignRight})
}
