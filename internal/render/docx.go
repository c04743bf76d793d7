package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/adunn147/AudioExtractionTranscription/internal/domain"
)

const (
	fontName      = "Calibri"
	titleSize     = 16
	headingSize   = 15
	bodySize      = 11
	timestampSize = 9

	textColor      = "000000"
	timestampColor = "000096"
)

// Render writes the transcript as a docx document: metadata, the full text
// as prose, then a page break and a two-column timestamped table.
func (r *implRenderer) Render(result domain.TranscriptResult, outputPath, title string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)

	addStyledRun(doc.AddParagraph(""), "Generated on: "+time.Now().Format("2006-01-02 15:04:05"), false, bodySize)
	if result.Duration > 0 {
		addStyledRun(doc.AddParagraph(""), "Duration: "+formatTimestamp(result.Duration), false, bodySize)
	}
	language := result.Language
	if language == "" {
		language = "unknown"
	}
	addStyledRun(doc.AddParagraph(""), "Language: "+language, false, bodySize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Clean Text", true, headingSize)
	addStyledRun(doc.AddParagraph(""), strings.TrimSpace(result.Text), false, bodySize)

	doc.AddPageBreak()
	addStyledRun(doc.AddParagraph(""), "Timestamped Transcript", true, headingSize)

	table := doc.AddTable()
	table.Style("LightList-Accent1")
	for _, row := range segmentRows(result.Segments) {
		tr := table.AddRow()

		timestampCell := tr.AddCell()
		for _, line := range strings.Split(row[0], "\n") {
			p := timestampCell.AddParagraph("")
			p.AddText(line).Font(fontName).Size(timestampSize).Color(timestampColor).Bold(true)
		}

		textCell := tr.AddCell()
		p := textCell.AddParagraph("")
		p.AddText(row[1]).Font(fontName).Size(bodySize).Color(textColor)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// segmentRows maps segments to table rows: left cell holds the start and end
// timestamps separated by a newline, right cell the trimmed segment text.
// Row order equals segment order.
func segmentRows(segments []domain.TranscriptSegment) [][2]string {
	rows := make([][2]string, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, [2]string{
			formatTimestamp(s.Start) + "\n" + formatTimestamp(s.End),
			strings.TrimSpace(s.Text),
		})
	}
	return rows
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}
