package xiangqi

import (
	"errors"
	"strings"
	"unicode"
)

var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,  // 车
	'n': PieceHorse,    // 马
	'b': PieceElephant, // 相
	'a': PieceAdvisor,  // 仕
	'k': PieceGeneral,  // 帅
	'c': PieceCannon,   // 炮
	'p': PieceSoldier,  // 兵
}

var pieceTypeToLetter = [numPieceTypes]rune{0, 'k', 'a', 'b', 'n', 'r', 'c', 'p'}

func pieceToChar(pc Piece) rune {
	if pc.Type <= PieceNone || int(pc.Type) >= numPieceTypes {
		return '.'
	}
	base := pieceTypeToLetter[pc.Type]
	if pc.Side == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// Encode 标准中国象棋 FEN：10 行用“/”隔开，第一行是黑方底线 (y=0)；空格后 w/b 表示轮到谁
func (p *Position) Encode() string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Cols; x++ {
			pc, ok := p.PieceAt(x, y)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition 解析 FEN。棋子 id 按扫描顺序分配：红方 0..15，黑方 16..31。
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	pos := &Position{SideToMove: Red}
	for y := 0; y < Rows; y++ {
		x := 0
		for _, ch := range rows[y] {
			if x >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				x += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidFEN
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			if _, err := pos.place(side, pt, x, y); err != nil {
				return nil, ErrInvalidFEN
			}
			x++
		}
		if x != Cols {
			return nil, ErrInvalidFEN
		}
	}
	if len(parts) > 1 {
		switch parts[1] {
		case "w", "r":
			pos.SideToMove = Red
		case "b":
			pos.SideToMove = Black
		default:
			return nil, ErrInvalidFEN
		}
	}
	pos.Hash = pos.CalculateHash()
	if err := pos.Validate(); err != nil {
		return nil, ErrInvalidFEN
	}
	return pos, nil
}
