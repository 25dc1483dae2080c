package extract

import (
	"bufio"
	"io"
	"strings"
)

// TextExtractor handles plain text files. Plain text carries no style, so
// every paragraph becomes a body-sized run and the resulting tree is flat.
type TextExtractor struct{}

func (p *TextExtractor) Extract(r io.Reader, filename string) ([]Run, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var runs []Run
	order := 0
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		runs = append(runs, Run{
			Text:     current.String(),
			FontSize: nominalBodySize,
			Order:    order,
		})
		order++
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
