package input

// escParser decodes the byte stream coming from a raw-mode terminal into
// directional key presses. Arrow keys arrive as CSI (ESC [ A..D) or SS3
// (ESC O A..D) sequences, WASD as plain bytes. Anything else is dropped.

const (
	escGround = iota
	escIntro
	escBracket
)

type token struct {
	dir  Dir
	quit bool
}

type escParser struct {
	state int
}

func (p *escParser) feed(b byte) (token, bool) {
	switch p.state {
	case escIntro:
		if b == '[' || b == 'O' {
			p.state = escBracket
			return token{}, false
		}
		p.state = escGround
		return token{}, false
	case escBracket:
		p.state = escGround
		switch b {
		case 'A':
			return token{dir: DirUp}, true
		case 'B':
			return token{dir: DirDown}, true
		case 'C':
			return token{dir: DirRight}, true
		case 'D':
			return token{dir: DirLeft}, true
		}
		return token{}, false
	}

	switch b {
	case 0x1b:
		p.state = escIntro
	case 0x03, 0x04, 'q', 'Q': // ctrl-c, ctrl-d
		return token{quit: true}, true
	case 'w', 'W':
		return token{dir: DirUp}, true
	case 's', 'S':
		return token{dir: DirDown}, true
	case 'a', 'A':
		return token{dir: DirLeft}, true
	case 'd', 'D':
		return token{dir: DirRight}, true
	}
	return token{}, false
}
