package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const doneMarker = "[DONE]"

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// decodeStream reads server-sent events from r and calls fn with each
// non-empty content delta until the [DONE] marker or EOF.
func decodeStream(r io.Reader, fn func(delta string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()

		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}

		data = strings.TrimSpace(data)
		if data == doneMarker {
			return nil
		}
		if data == "" {
			continue
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("decode stream event: %w", err)
		}

		for _, c := range chunk.Choices {
			if c.Delta.Content != "" {
				fn(c.Delta.Content)
			}
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}

	return nil
}
