package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
)

func TestEmbedContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "leading asterisks are blanked before dedent",
			text: "embed:rst:leading-asterisk\n * .. note::\n *\n *    hi",
			want: []string{".. note::", "", "   hi"},
		},
		{
			name: "asterisks kept without the option",
			text: "embed:rst\n * item\n * other",
			want: []string{"* item", "* other"},
		},
		{
			name: "deeper lines keep their extra indentation",
			text: "embed:rst\n    .. code-block:: c\n\n       int x;\n         int y;\n    done",
			want: []string{".. code-block:: c", "", "   int x;", "     int y;", "done"},
		},
		{
			name: "header only",
			text: "embed:rst",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := EmbedContent(tt.text)
			got := make([]string, len(lines))
			for i, l := range lines {
				assert.Equal(t, EmbedSource, l.Source)
				got[i] = l.Text
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbedContent_ReturnsDocnodeLines(t *testing.T) {
	assert.Equal(t, []docnode.Line{{Text: "a", Source: EmbedSource}}, EmbedContent("embed:rst\n  a"))
}
