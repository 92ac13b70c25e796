package word

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"nodeparser/internal/config"
	"nodeparser/internal/model"

	"github.com/nguyenthenguyen/docx"
)

// WordExporter renders the processing summary and the issue ledger into a
// .docx document. The minimal template is generated on the fly, so no binary
// asset needs to ship with the tool.
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(rep *model.Report, cfg *config.Config) error {
	// 1. Write the minimal template to a temp file
	tmpFile, err := os.CreateTemp("", "nodeparser-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up

	if err := writeTemplate(tmpFile); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write docx template: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// 2. Open docx from temp path
	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 3. Replace summary placeholders
	doc.Replace("{{Date}}", rep.ProcessedAt, -1)
	doc.Replace("{{Source}}", rep.Source, -1)
	doc.Replace("{{Sheet}}", rep.Sheet, -1)

	// 4. Generate the issue report as plain text; the docx library handles
	// the XML encoding.
	var contentBuilder strings.Builder

	contentBuilder.WriteString("PROCESSING ISSUES\n\n")
	contentBuilder.WriteString(fmt.Sprintf("Total issues recorded: %d\n\n", rep.Ledger.Total()))
	contentBuilder.WriteString(strings.Repeat("=", 80) + "\n\n")

	for _, entry := range rep.Ledger.Entries() {
		contentBuilder.WriteString(strings.ToUpper(entry.Category) + "\n")
		if len(entry.Values) == 0 {
			contentBuilder.WriteString("  (none)\n\n")
			continue
		}
		contentBuilder.WriteString("  " + strings.Join(entry.Values, ", ") + "\n\n")
	}

	if len(rep.SkippedRows) > 0 {
		contentBuilder.WriteString(strings.Repeat("-", 80) + "\n\n")
		contentBuilder.WriteString("ROWS SKIPPED DURING EXTRACTION\n")
		parts := make([]string, len(rep.SkippedRows))
		for i, row := range rep.SkippedRows {
			parts[i] = fmt.Sprintf("%d", row)
		}
		contentBuilder.WriteString("  " + strings.Join(parts, ", ") + "\n")
	}

	doc.Replace("{{Content}}", contentBuilder.String(), -1)

	outFile := cfg.OutputPath(rep.BaseName + ".docx")
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// writeTemplate emits a minimal wordprocessingml package with the
// placeholders the exporter replaces.
func writeTemplate(f *os.File) error {
	w := zip.NewWriter(f)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Node Details Report</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: {{Date}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Workbook: {{Source}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Sheet: {{Sheet}}</w:t></w:r></w:p>
<w:p><w:r><w:t>{{Content}}</w:t></w:r></w:p>
</w:body>
</w:document>`},
	}

	for _, part := range parts {
		entry, err := w.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := entry.Write([]byte(part.body)); err != nil {
			return err
		}
	}

	return w.Close()
}
