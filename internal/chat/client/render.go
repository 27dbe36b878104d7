package client

import (
	"fmt"
	"strings"
)

// render - prints one received line, highlighting lines that mention the
// client's own username. The match is a plain substring check, so a mention
// of a longer name sharing the prefix highlights too.
func (c *Client) render(line string) {
	if strings.Contains(line, "@"+c.username) {
		c.highlight.Fprintln(c.output, line)
		return
	}
	fmt.Fprintln(c.output, line)
}
