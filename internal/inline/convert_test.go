package inline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/inlinehtml/internal/htmlnode"
	"go.abhg.dev/inlinehtml/internal/iotest"
	"go.abhg.dev/inlinehtml/internal/span"
	"go.abhg.dev/inlinehtml/internal/split"
	"golang.org/x/net/html"
)

func TestConverter_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		conv Converter
		give string
		want string
	}{
		{
			desc: "plain",
			give: "just text",
			want: "<p>just text</p>",
		},
		{
			desc: "empty",
			give: "",
			want: "<p></p>",
		},
		{
			desc: "only bold delimiters",
			give: "**",
			want: "<p></p>",
		},
		{
			desc: "only code delimiters",
			give: "``",
			want: "<p></p>",
		},
		{
			desc: "repeated bold delimiters",
			give: "****",
			want: "<p></p>",
		},
		{
			desc: "bold",
			give: "This is **bold** text",
			want: "<p>This is <b>bold</b> text</p>",
		},
		{
			desc: "italic",
			give: "This is *italic*",
			want: "<p>This is <i>italic</i></p>",
		},
		{
			desc: "code",
			give: "Run `go test` now",
			want: "<p>Run <code>go test</code> now</p>",
		},
		{
			desc: "unbalanced",
			give: "2 * 3 = 6",
			want: "<p>2 * 3 = 6</p>",
		},
		{
			desc: "custom tag",
			conv: Converter{Tag: "div"},
			give: "**x**",
			want: "<div><b>x</b></div>",
		},
		{
			desc: "custom rules",
			conv: Converter{Rules: []Rule{
				{Delimiter: "_", Style: span.Italic},
				{Delimiter: "==", Style: span.Bold},
			}},
			give: "a _b_ c",
			want: "<p>a <i>b</i> c</p>",
		},
		{
			desc: "markup is not escaped",
			give: "a `<br>` b",
			want: "<p>a <code><br></code> b</p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			conv := tt.conv
			conv.Log = log.New(iotest.Writer(t), "", 0)

			got, err := conv.Render(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	got, err := new(Converter).Convert("This is **bold** and `code`")
	require.NoError(t, err)

	want := &htmlnode.Parent{
		Tag: "p",
		Children: []htmlnode.Node{
			&htmlnode.Leaf{Value: "This is "},
			&htmlnode.Leaf{Tag: "b", Value: "bold"},
			&htmlnode.Leaf{Value: " and "},
			&htmlnode.Leaf{Tag: "code", Value: "code"},
		},
	}
	assert.True(t, htmlnode.Equal(want, got), "want %v\ngot  %v", want, got)
}

func TestConverter_Spans_onlyDelimiters(t *testing.T) {
	t.Parallel()

	got, err := new(Converter).Spans("****")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConverter_RenderAll_onlyDelimiters(t *testing.T) {
	t.Parallel()

	got, err := new(Converter).RenderAll(context.Background(),
		[]string{"fine *line*", "``", "**"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<p>fine <i>line</i></p>",
		"<p></p>",
		"<p></p>",
	}, got)
}

func TestConverter_Spans(t *testing.T) {
	t.Parallel()

	got, err := new(Converter).Spans("a **b** *c* `d`")
	require.NoError(t, err)
	assert.Equal(t, []span.Span{
		span.Text("a ", span.Plain),
		span.Text("b", span.Bold),
		span.Text(" ", span.Plain),
		span.Text("c", span.Italic),
		span.Text(" ", span.Plain),
		span.Text("d", span.Code),
	}, got)
}

func TestConverter_badRule(t *testing.T) {
	t.Parallel()

	conv := Converter{Rules: []Rule{{Delimiter: "", Style: span.Bold}}}
	_, err := conv.Render("x")
	assert.ErrorIs(t, err, split.ErrEmptyDelimiter)

	conv = Converter{Rules: []Rule{{Delimiter: "*"}}}
	_, err = conv.Render("x")
	assert.ErrorIs(t, err, split.ErrInvalidStyle)
	assert.ErrorContains(t, err, "rule *=Style(0)")
}

func TestConverter_structure(t *testing.T) {
	t.Parallel()

	got, err := new(Converter).Render("Read **the** `manual`")
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err)

	bold := cascadia.MustCompile("p > b").MatchAll(doc)
	require.Len(t, bold, 1)
	assert.Equal(t, "the", bold[0].FirstChild.Data)

	code := cascadia.MustCompile("p > code").MatchAll(doc)
	require.Len(t, code, 1)
	assert.Equal(t, "manual", code[0].FirstChild.Data)
}

func TestConverter_RenderAll(t *testing.T) {
	t.Parallel()

	var texts, want []string
	for i := 0; i < 50; i++ {
		texts = append(texts, fmt.Sprintf("line **%d**", i))
		want = append(want, fmt.Sprintf("<p>line <b>%d</b></p>", i))
	}

	conv := Converter{Jobs: 4}
	got, err := conv.RenderAll(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConverter_RenderAll_empty(t *testing.T) {
	t.Parallel()

	got, err := new(Converter).RenderAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConverter_RenderAll_error(t *testing.T) {
	t.Parallel()

	conv := Converter{Rules: []Rule{{Delimiter: "*"}}}
	got, err := conv.RenderAll(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, split.ErrInvalidStyle)
	assert.Nil(t, got)
}

func TestConverter_RenderAll_canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := new(Converter).RenderAll(ctx, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRule_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    Rule
		wantErr string
	}{
		{give: "**=bold", want: Rule{Delimiter: "**", Style: span.Bold}},
		{give: "`=code", want: Rule{Delimiter: "`", Style: span.Code}},
		{give: "===italic", want: Rule{Delimiter: "==", Style: span.Italic}},
		{give: "*", wantErr: "expected form 'delimiter=style'"},
		{give: "=bold", wantErr: "delimiter must not be empty"},
		{give: "*=wavy", wantErr: `unknown style "wavy"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var got Rule
			err := got.Set(tt.give)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, got.Get())
			assert.Equal(t, tt.give, got.String())
		})
	}
}

func TestConverter_defaultLogger(t *testing.T) {
	t.Parallel()

	assert.Same(t, new(Converter).logger(), new(Converter).logger(),
		"unset Log should share one discarding logger")

	logger := log.New(iotest.Writer(t), "", 0)
	assert.Same(t, logger, (&Converter{Log: logger}).logger())
}
