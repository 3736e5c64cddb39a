package input

import "testing"

func feedAll(p *escParser, bytes []byte) []token {
	var tokens []token
	for _, b := range bytes {
		if tok, ok := p.feed(b); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func TestEscapeSequences(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  []token
	}{
		{"csi up", []byte("\x1b[A"), []token{{dir: DirUp}}},
		{"csi down", []byte("\x1b[B"), []token{{dir: DirDown}}},
		{"csi right", []byte("\x1b[C"), []token{{dir: DirRight}}},
		{"csi left", []byte("\x1b[D"), []token{{dir: DirLeft}}},
		{"ss3 up", []byte("\x1bOA"), []token{{dir: DirUp}}},
		{"wasd", []byte("wasd"), []token{{dir: DirUp}, {dir: DirLeft}, {dir: DirDown}, {dir: DirRight}}},
		{"upper case wasd", []byte("WD"), []token{{dir: DirUp}, {dir: DirRight}}},
		{"quit on q", []byte("q"), []token{{quit: true}}},
		{"quit on ctrl-c", []byte{0x03}, []token{{quit: true}}},
		{"unknown csi final", []byte("\x1b[Z"), nil},
		{"bare escape then letter swallowed", []byte("\x1bx"), nil},
		{"garbage ignored", []byte("xyz123"), nil},
		{"arrows back to back", []byte("\x1b[A\x1b[B"), []token{{dir: DirUp}, {dir: DirDown}}},
		{"garbage between arrows", []byte("z\x1b[Cz"), []token{{dir: DirRight}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p escParser
			got := feedAll(&p, tt.bytes)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// A sequence split across reads must still decode, the parser keeps its
// state between bytes.
func TestEscapeSequenceSplitAcrossFeeds(t *testing.T) {
	var p escParser
	if _, ok := p.feed(0x1b); ok {
		t.Fatal("lone escape produced a token")
	}
	if _, ok := p.feed('['); ok {
		t.Fatal("escape-bracket produced a token")
	}
	tok, ok := p.feed('D')
	if !ok || tok.dir != DirLeft {
		t.Fatalf("got %+v ok=%v, want left press", tok, ok)
	}
}
