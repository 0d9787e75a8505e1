// Package markdown renders crawl results and stored entries as Markdown.
package markdown

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/crawl"
	md "github.com/nao1215/markdown"
)

// WriteReport writes a summary of one crawl run.
func WriteReport(w io.Writer, result *crawl.Result, retrieved time.Time) error {
	doc := md.NewMarkdown(w)
	doc.H1("Wiktionary Crawl Report")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run", "`" + result.RunID + "`"},
			{"Retrieved", retrieved.UTC().Format(time.RFC1123)},
			{"Duration", result.Duration.Round(time.Millisecond).String()},
			{"Digest", "`" + result.Digest + "`"},
		},
	})
	doc.PlainText("")

	doc.H2("Counts")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Written", "Skipped"},
		Rows: [][]string{
			{"Index pages", strconv.Itoa(result.Pages), strconv.Itoa(result.PagesSkipped)},
			{"Words", strconv.Itoa(result.Words - result.WordsSkipped), strconv.Itoa(result.WordsSkipped)},
			{"Entries", strconv.Itoa(result.Entries), strconv.Itoa(result.Duplicates)},
		},
	})
	doc.PlainText("")

	if result.PagesSkipped > 0 {
		doc.Note(strconv.Itoa(result.PagesSkipped) + " index pages could not be read. The run is still complete.")
		doc.PlainText("")
	}
	return doc.Build()
}

// WriteEntries writes entries as one table in sink order.
func WriteEntries(w io.Writer, entries []*wikrawler.DictionaryEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			cell(e.Word),
			e.PartOfSpeech.Name(),
			cell(e.Definitions),
			cell(e.URL),
		})
	}

	doc := md.NewMarkdown(w)
	doc.Table(md.TableSet{
		Header: []string{"Word", "Part Of Speech", "Definitions", "Word Url"},
		Rows:   rows,
	})
	return doc.Build()
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// cell escapes s for use inside a table cell.
func cell(s string) string {
	return cellReplacer.Replace(s)
}
