// Package report renders a profile into a human-readable Markdown
// document or a machine-readable JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/filespect/filespect/profile"
)

// FileName returns the report file name for an input path, named after
// the input's stem: report_<stem>.<ext>.
func FileName(path, format string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return fmt.Sprintf("report_%s.%s", stem, format)
}

// JSON renders the profile as an indented JSON document.
func JSON(path string, p profile.Profile) ([]byte, error) {
	doc := struct {
		File    string          `json:"file"`
		Kind    string          `json:"kind"`
		Profile profile.Profile `json:"profile"`
	}{
		File:    path,
		Kind:    p.ProfileKind(),
		Profile: p,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Markdown renders the profile as a Markdown document.
func Markdown(path string, p profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# File Report: %s\n\n", filepath.Base(path))
	fmt.Fprintf(&b, "- **Location**: `%s`\n", path)
	fmt.Fprintf(&b, "- **Type**: `%s`\n\n", p.ProfileKind())

	switch x := p.(type) {
	case *profile.TextProfile:
		writeText(&b, x)
	case *profile.TableProfile:
		writeTable(&b, x)
	case *profile.StructureProfile:
		writeStructure(&b, x)
	}

	return b.String()
}

func writeText(b *strings.Builder, p *profile.TextProfile) {
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(b, "- Lines: **%d**\n", p.LineCount)
	fmt.Fprintf(b, "- Characters: **%d**\n", p.CharCount)
	fmt.Fprintf(b, "- Words: **%d**\n", p.WordCount)
	fmt.Fprintf(b, "- Unique Words: **%d**\n", p.UniqueWordCount)
	fmt.Fprintf(b, "- Avg Word Length: **%v**\n", p.AvgWordLength)
	fmt.Fprintf(b, "- Longest Line Length: **%d**\n", p.LongestLineLength)

	if len(p.TopWords) == 0 {
		return
	}

	b.WriteString("\n## Top Words\n\n")
	renderRanked(b, []string{"Rank", "Word", "Count"},
		lo.Map(p.TopWords, func(wc profile.WordCount, i int) []string {
			return []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)}
		}))
}

func writeTable(b *strings.Builder, p *profile.TableProfile) {
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(b, "- Rows: **%d**\n", p.RowCount)
	fmt.Fprintf(b, "- Columns: **%d**\n", p.ColumnCount)
	fmt.Fprintf(b, "- Headers: `%s`\n", strings.Join(p.HeaderOrder, ", "))

	if len(p.Columns) == 0 {
		return
	}

	b.WriteString("\n## Column Details\n")

	for _, col := range p.Columns {
		fmt.Fprintf(b, "\n### %s *(%s)*\n\n", col.Name, col.Kind)
		fmt.Fprintf(b, "- Missing: **%d**\n", col.MissingCount)

		if col.Kind == profile.ColumnNumeric {
			n := col.Numeric
			fmt.Fprintf(b, "- Count: **%d**\n", n.Count)
			fmt.Fprintf(b, "- Min: **%v** | Max: **%v**\n", formatNum(n.Min), formatNum(n.Max))
			fmt.Fprintf(b, "- Mean: **%v** | Median: **%v**\n", formatNum(n.Mean), formatNum(n.Median))
			continue
		}

		c := col.Categorical
		fmt.Fprintf(b, "- Observed: **%d**\n", c.ObservedCount)

		if len(c.TopValues) == 0 {
			continue
		}

		b.WriteString("\n")
		renderRanked(b, []string{"Rank", "Value", "Count"},
			lo.Map(c.TopValues, func(vc profile.ValueCount, i int) []string {
				return []string{strconv.Itoa(i + 1), vc.Value, strconv.Itoa(vc.Count)}
			}))
	}
}

func writeStructure(b *strings.Builder, p *profile.StructureProfile) {
	switch p.Shape {
	case profile.ShapeObject:
		b.WriteString("## JSON Object Keys\n\n")

		for _, k := range p.Keys {
			fmt.Fprintf(b, "- `%s` → **%s**", k.Name, k.Type)
			if k.Length != nil {
				fmt.Fprintf(b, " (length: %d)", *k.Length)
			}
			if len(k.Keys) > 0 {
				fmt.Fprintf(b, " (keys: %s)", strings.Join(k.Keys, ", "))
			}
			if len(k.Sample) > 0 {
				fmt.Fprintf(b, " (sample: %s)", formatSample(k.Sample))
			}
			b.WriteString("\n")
		}

	case profile.ShapeList:
		b.WriteString("## JSON List\n\n")
		fmt.Fprintf(b, "- Length: **%d**\n", p.Length)
		fmt.Fprintf(b, "- Element types (sample): `%s`\n", strings.Join(p.ElementTypes, ", "))
		fmt.Fprintf(b, "- Sample (up to 10): `%s`\n", formatSample(p.Sample))

	default:
		b.WriteString("## JSON Value\n\n")
		fmt.Fprintf(b, "- Type: **%s**\n", p.ValueType)
	}
}

// renderRanked writes a Markdown table using tablewriter's borderless
// markdown mode.
func renderRanked(w io.Writer, header []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	t.SetCenterSeparator("|")
	t.AppendBulk(rows)
	t.Render()
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatSample(sample []interface{}) string {
	b, err := json.Marshal(sample)
	if err != nil {
		return fmt.Sprintf("%v", sample)
	}
	return string(b)
}
