package tokenizer

import (
	"errors"
	"iter"
	"strings"
	"testing"
	"testing/iotest"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"markov-go/internal/model/chain"
)

func collect(tokens iter.Seq[chain.Token]) chain.TokenSequence {
	var result chain.TokenSequence
	for token := range tokens {
		result = append(result, token)
	}
	return result
}

func TestWhitespaceTokenizer_Tokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want chain.TokenSequence
	}{
		{name: "empty", text: "", want: nil},
		{name: "all whitespace", text: " \t\n\r\v\f ", want: nil},
		{name: "single", text: "one", want: chain.TokenSequence{"one"}},
		{name: "runs of whitespace", text: "  only \t\n two  ", want: chain.TokenSequence{"only", "two"}},
		{name: "verbatim content", text: "Hello, World! hello", want: chain.TokenSequence{"Hello,", "World!", "hello"}},
		{name: "unicode whitespace", text: "a\u00a0b\u2003c\u3000d", want: chain.TokenSequence{"a", "b", "c", "d"}},
		{name: "multibyte words", text: "héllo wörld", want: chain.TokenSequence{"héllo", "wörld"}},
	}

	tok := NewWhitespaceTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tok.Tokens(NewCorpus(tt.text)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Unexpected tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespaceTokenizer_MatchesFields(t *testing.T) {
	text := "the quick fox\tthe quick\nbrown  the quick fox\n"
	got := collect(NewWhitespaceTokenizer().Tokens(NewCorpus(text)))
	want := chain.TokenSequence(strings.Fields(text))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestWhitespaceTokenizer_Restartable(t *testing.T) {
	seq := NewWhitespaceTokenizer().Tokens(NewCorpus("a b c"))

	first := collect(seq)
	second := collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Expected re-iteration to yield the same tokens (-first +second):\n%s", diff)
	}
}

func TestWhitespaceTokenizer_EarlyStop(t *testing.T) {
	seq := NewWhitespaceTokenizer().Tokens(NewCorpus("a b c d"))

	var got chain.TokenSequence
	for token := range seq {
		got = append(got, token)
		if len(got) == 2 {
			break
		}
	}
	if diff := cmp.Diff(chain.TokenSequence{"a", "b"}, got); diff != "" {
		t.Fatalf("Unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestWhitespaceTokenizer_SharesCorpusMemory(t *testing.T) {
	corpus := NewCorpus("alpha beta")
	tokens := collect(NewWhitespaceTokenizer().Tokens(corpus))
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}

	base := uintptr(unsafe.Pointer(unsafe.StringData(corpus.Text())))
	second := uintptr(unsafe.Pointer(unsafe.StringData(tokens[1])))
	if second != base+6 {
		t.Fatalf("Expected token to point into the corpus buffer")
	}
}

func TestReadCorpus(t *testing.T) {
	corpus, err := ReadCorpus(strings.NewReader("only two"))
	if err != nil {
		t.Fatalf("Failed to read corpus: %v", err)
	}
	if corpus.Text() != "only two" || corpus.Len() != 8 {
		t.Fatalf("Unexpected corpus %q (len %d)", corpus.Text(), corpus.Len())
	}

	_, err = ReadCorpus(iotest.ErrReader(errors.New("boom")))
	if !errors.Is(err, ErrInputRead) {
		t.Fatalf("Expected ErrInputRead, got %v", err)
	}
}

func TestTokenizerRegistry(t *testing.T) {
	registry := NewTokenizerRegistry()

	tok, ok := registry.GetTokenizer(WhitespaceTokenizerName)
	if !ok {
		t.Fatalf("Expected whitespace tokenizer to be registered")
	}
	if tok.Name() != WhitespaceTokenizerName {
		t.Fatalf("Expected name %q, got %q", WhitespaceTokenizerName, tok.Name())
	}

	if _, ok := registry.GetTokenizer("tree-sitter"); ok {
		t.Fatalf("Expected unknown tokenizer lookup to fail")
	}

	if diff := cmp.Diff([]string{"whitespace"}, registry.SupportedTokenizers()); diff != "" {
		t.Fatalf("Unexpected tokenizers (-want +got):\n%s", diff)
	}
}
